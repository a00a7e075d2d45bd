package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const listingColumns = `id, owner_id, title, description, location, mission_date,
	available_slots, owner_chat_id, created_at, updated_at`

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `INSERT INTO listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Title, l.Description, l.Location, l.MissionDate,
		nullInt(l.AvailableSlots), nullInt64(l.OwnerChatID), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return unavailable("insert listing", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, unavailable("get listing", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, unavailable("scan listing", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  ORDER BY mission_date, id`

	return r.query(ctx, "list listings", query)
}

func (r *ListingRepository) ListEndedBefore(ctx context.Context, t time.Time) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE mission_date < $1
			  ORDER BY mission_date, id`

	return r.query(ctx, "list ended listings", query, t)
}

func (r *ListingRepository) query(ctx context.Context, op, query string, args ...any) ([]*domain.Listing, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer rows.Close()

	res := make([]*domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, unavailable("scan listing", err)
		}
		res = append(res, l)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable(op, err)
	}

	return res, nil
}

// UpdateCapacity runs without retry: replaying an increment that already
// landed would skew the counter.
func (r *ListingRepository) UpdateCapacity(ctx context.Context, id string, delta int) error {
	query := `UPDATE listings
			  SET available_slots = available_slots + $2, updated_at = now()
			  WHERE id = $1
			    AND available_slots IS NOT NULL
			    AND available_slots + $2 >= 0`

	res, err := r.db.Master.ExecContext(ctx, query, id, delta)
	if err != nil {
		return unavailable("update capacity", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return unavailable("capacity rows affected", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: the listing is missing, unlimited, or full.
	var slots sql.NullInt64
	checkQuery := `SELECT available_slots FROM listings WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&slots); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return unavailable("check capacity", err)
	}
	if !slots.Valid {
		return nil
	}

	return fmt.Errorf("update capacity by %d: %w", delta, domain.ErrNoAvailableSlots)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*domain.Listing, error) {
	var (
		l      domain.Listing
		slots  sql.NullInt64
		chatID sql.NullInt64
	)
	if err := s.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Location, &l.MissionDate,
		&slots, &chatID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if slots.Valid {
		v := int(slots.Int64)
		l.AvailableSlots = &v
	}
	if chatID.Valid {
		v := chatID.Int64
		l.OwnerChatID = &v
	}

	return &l, nil
}
