package domain

import "errors"

var (
	// Fatal batch errors: the whole submission is rejected before any
	// per-record processing.
	ErrMissingRequiredColumns = errors.New("input must contain at least Agent Code and Amount columns")
	ErrBatchTooLarge          = errors.New("batch exceeds the maximum number of entries")
	ErrEmptyBatch             = errors.New("batch contains no entries")

	ErrEarningNotFound    = errors.New("earning not found")
	ErrAgentNotFound      = errors.New("agent not found")
	ErrDuplicateReference = errors.New("reference id already used")
	ErrStateConflict      = errors.New("earning is not pending")
	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrInvalidPageParams  = errors.New("invalid page parameters")
)

// IsFatalBatchError reports whether err aborts a submission wholesale.
func IsFatalBatchError(err error) bool {
	return errors.Is(err, ErrMissingRequiredColumns) ||
		errors.Is(err, ErrBatchTooLarge) ||
		errors.Is(err, ErrEmptyBatch)
}
