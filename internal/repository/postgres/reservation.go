package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, listing_id, actor_id, actor_name, actor_contact, message,
	status, owner_comment, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Insert relies on reservations_active_pair_uq to reject a second active
// reservation for the same actor and listing.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) (string, error) {
	id := uuid.New().String()

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, res.ListingID, res.ActorID, res.ActorName, res.ActorContact, res.Message,
		res.Status, nullString(res.OwnerComment), res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		pgErr, ok := pgError(err)
		switch {
		case ok && pgErr.Code == codeUniqueViolation && pgErr.Constraint == activePairConstraint:
			return "", domain.ErrDuplicateReservation
		case ok && pgErr.Code == codeUniqueViolation && pgErr.Constraint == reservationPKConstraint:
			// A retried attempt hit the row written by an earlier one.
		case ok && pgErr.Code == codeForeignKeyViolation:
			return "", domain.ErrListingNotFound
		default:
			return "", unavailable("insert reservation", err)
		}
	}

	res.ID = id
	return id, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, unavailable("get reservation", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, unavailable("scan reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindByActorAndListing(
	ctx context.Context,
	actorID, listingID string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE actor_id = $1 AND listing_id = $2 AND status = ANY($3)
			  ORDER BY created_at DESC, id DESC`

	return r.query(ctx, "find reservations by actor and listing", query,
		actorID, listingID, pq.Array(statusStrings(statuses)))
}

// UpdateStatus is a compare-and-swap on the current status and runs without
// retry, since a replayed swap would report a false conflict.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to domain.ReservationStatus,
	ownerComment *string,
) error {
	query := `UPDATE reservations
			  SET status = $3,
			      owner_comment = COALESCE($4, owner_comment),
			      updated_at = now()
			  WHERE id = $1 AND status = $2`

	result, err := r.db.Master.ExecContext(ctx, query, id, from, to, nullString(ownerComment))
	if err != nil {
		if pgErr, ok := pgError(err); ok && pgErr.Code == codeUniqueViolation {
			return domain.ErrDuplicateReservation
		}
		return unavailable("update reservation status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable("reservation rows affected", err)
	}
	if affected > 0 {
		return nil
	}

	// Either the reservation is gone or its status moved under us.
	var status string
	checkQuery := `SELECT status FROM reservations WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return unavailable("check reservation status", err)
	}

	return domain.ErrInvalidTransition
}

func (r *ReservationRepository) ListByActor(ctx context.Context, actorID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              WHERE actor_id = $1
              ORDER BY created_at DESC, id DESC`

	return r.query(ctx, "list reservations by actor", query, actorID)
}

func (r *ReservationRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              WHERE listing_id = $1
              ORDER BY created_at DESC, id DESC`

	return r.query(ctx, "list reservations by listing", query, listingID)
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Master.ExecContext(ctx, query, id)
	if err != nil {
		return unavailable("delete reservation", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable("reservation rows affected", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) query(ctx context.Context, op, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer rows.Close()

	res := make([]*domain.Reservation, 0)
	for rows.Next() {
		v, err := scanReservation(rows)
		if err != nil {
			return nil, unavailable("scan reservation", err)
		}
		res = append(res, v)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable(op, err)
	}

	return res, nil
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var (
		res     domain.Reservation
		comment sql.NullString
	)
	if err := s.Scan(
		&res.ID, &res.ListingID, &res.ActorID, &res.ActorName, &res.ActorContact, &res.Message,
		&res.Status, &comment, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if comment.Valid {
		v := comment.String
		res.OwnerComment = &v
	}

	return &res, nil
}
