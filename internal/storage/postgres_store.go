package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/refpay/earnings-be/internal/domain"
)

// PostgresStore is the pgx-backed EarningsStore. Reference reservation rides
// on a primary-key insert; ledger idempotency and status transitions are
// compare-and-set updates, so concurrent batches cannot double-apply.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const earningColumns = `id, agent_id, agent_code, amount, currency, type, description,
	reference_id, commission_rate, earned_at, status, reviewed_at, reviewed_by,
	rejection_reason, admin_notes, metadata, created_at, applied_at`

func (s *PostgresStore) Create(ctx context.Context, earning *domain.Earning) error {
	metadata, err := json.Marshal(earning.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	var referenceID *string
	if earning.ReferenceID != "" {
		referenceID = &earning.ReferenceID
	}

	query := `INSERT INTO earnings (` + earningColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, COALESCE($17, now()), $18)`

	var createdAt *time.Time
	if !earning.CreatedAt.IsZero() {
		createdAt = &earning.CreatedAt
	}

	_, err = s.db.Exec(ctx, query,
		earning.ID, earning.AgentID, earning.AgentCode, earning.Amount,
		earning.Currency, string(earning.Type), earning.Description,
		referenceID, earning.CommissionRate, earning.EarnedAt,
		string(earning.Status), earning.ReviewedAt, nullable(earning.ReviewedBy),
		nullable(earning.RejectionReason), nullable(earning.AdminNotes),
		metadata, createdAt, earning.AppliedAt,
	)
	return err
}

func (s *PostgresStore) GetByID(ctx context.Context, earningID string) (*domain.Earning, error) {
	row := s.db.QueryRow(ctx, `SELECT `+earningColumns+` FROM earnings WHERE id = $1`, earningID)
	return scanEarning(row)
}

func (s *PostgresStore) FindByReferenceID(ctx context.Context, referenceID string) (*domain.Earning, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+earningColumns+` FROM earnings WHERE reference_id = $1 AND status <> 'cancelled' LIMIT 1`,
		referenceID)
	return scanEarning(row)
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, earningID string, status domain.EarningStatus, review domain.ReviewFields) (*domain.Earning, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE earnings
		 SET status = $2, reviewed_at = $3, reviewed_by = $4, rejection_reason = $5, admin_notes = $6
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+earningColumns,
		earningID, string(status), review.ReviewedAt, nullable(review.ReviewedBy),
		nullable(review.RejectionReason), nullable(review.AdminNotes),
	)

	earning, err := scanEarning(row)
	if errors.Is(err, domain.ErrEarningNotFound) {
		// Distinguish missing from already-terminal.
		var current string
		lookupErr := s.db.QueryRow(ctx, `SELECT status FROM earnings WHERE id = $1`, earningID).Scan(&current)
		if lookupErr == nil {
			return nil, domain.ErrStateConflict
		}
		return nil, domain.ErrEarningNotFound
	}
	return earning, err
}

func (s *PostgresStore) ListByFilter(ctx context.Context, filter domain.EarningFilter) ([]domain.Earning, int, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, 0, domain.ErrInvalidPageParams
	}

	var (
		conditions []string
		args       []any
	)
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != nil {
		add("e.status = $%d", string(*filter.Status))
	}
	if filter.AgentID != "" {
		add("e.agent_id = $%d", filter.AgentID)
	}
	if filter.Tier != "" {
		add("a.tier = $%d", filter.Tier)
	}
	if filter.From != nil {
		add("e.earned_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("e.earned_at <= $%d", *filter.To)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.description ILIKE $%d OR e.agent_code ILIKE $%d OR e.reference_id ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}
	from := ` FROM earnings e JOIN agents a ON a.id = e.agent_id` + where

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	args = append(args, filter.PerPage, offset)
	query := fmt.Sprintf(`SELECT `+prefixed(earningColumns, "e.")+from+
		` ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	earnings := []domain.Earning{}
	for rows.Next() {
		earning, err := scanEarning(rows)
		if err != nil {
			return nil, 0, err
		}
		earnings = append(earnings, *earning)
	}

	return earnings, total, rows.Err()
}

func (s *PostgresStore) ReserveReference(ctx context.Context, referenceID string) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO earning_references (reference_id) VALUES ($1) ON CONFLICT (reference_id) DO NOTHING`,
		referenceID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) ReleaseReference(ctx context.Context, referenceID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM earning_references WHERE reference_id = $1`, referenceID)
	return err
}

func (s *PostgresStore) MarkApplied(ctx context.Context, earningID string) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE earnings SET applied_at = now() WHERE id = $1 AND applied_at IS NULL`, earningID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM earnings WHERE id = $1)`, earningID).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrEarningNotFound
	}
	return false, nil
}

func (s *PostgresStore) ClearApplied(ctx context.Context, earningID string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE earnings SET applied_at = NULL WHERE id = $1`, earningID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEarning(row rowScanner) (*domain.Earning, error) {
	var (
		e               domain.Earning
		typ, status     string
		referenceID     *string
		description     *string
		reviewedBy      *string
		rejectionReason *string
		adminNotes      *string
		metadata        []byte
	)

	err := row.Scan(&e.ID, &e.AgentID, &e.AgentCode, &e.Amount, &e.Currency,
		&typ, &description, &referenceID, &e.CommissionRate, &e.EarnedAt,
		&status, &e.ReviewedAt, &reviewedBy, &rejectionReason, &adminNotes,
		&metadata, &e.CreatedAt, &e.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEarningNotFound
		}
		return nil, err
	}

	e.Type = domain.EarningType(typ)
	e.Status = domain.EarningStatus(status)
	e.ReferenceID = deref(referenceID)
	e.Description = deref(description)
	e.ReviewedBy = deref(reviewedBy)
	e.RejectionReason = deref(rejectionReason)
	e.AdminNotes = deref(adminNotes)

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	return &e, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func prefixed(columns, prefix string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = prefix + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
