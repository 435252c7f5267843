package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
)

// PostgresDirectory resolves agents and credits balances against the agents
// table. The credit is a single atomic UPDATE; row-level locking in Postgres
// makes concurrent credits to one agent safe on its own.
type PostgresDirectory struct {
	db *pgxpool.Pool
}

func NewPostgresDirectory(db *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) ResolveAgent(ctx context.Context, agentCode string) (*domain.Agent, error) {
	var agent domain.Agent
	err := d.db.QueryRow(ctx,
		`SELECT id, code, name, COALESCE(tier, ''), available_balance, total_earnings
		 FROM agents WHERE lower(btrim(code)) = lower(btrim($1))`,
		agentCode,
	).Scan(&agent.ID, &agent.Code, &agent.Name, &agent.Tier, &agent.AvailableBalance, &agent.TotalEarnings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return &agent, nil
}

func (d *PostgresDirectory) CreditBalance(ctx context.Context, agentID string, amount decimal.Decimal) error {
	tag, err := d.db.Exec(ctx,
		`UPDATE agents
		 SET available_balance = available_balance + $2, total_earnings = total_earnings + $2
		 WHERE id = $1`,
		agentID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}
