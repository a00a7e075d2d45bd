package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"

	activePairConstraint    = "reservations_active_pair_uq"
	reservationPKConstraint = "reservations_pkey"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

func pgError(err error) (*pq.Error, bool) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	res := make([]string, len(statuses))
	for i, s := range statuses {
		res[i] = string(s)
	}
	return res
}
