package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
)

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip data.
func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepositoryWithTx {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTripRepository implements portsrepo.TripRepositoryWithTx
var _ portsrepo.TripRepositoryWithTx = (*PgxTripRepository)(nil)

var FULL_TRIP_SELECT_QUERY = `
SELECT
	t.trip_id, t.name, t.description, t.destination, t.start_date, t.end_date,
	t.currency_code, t.is_active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM trips t
`

// getTrips private func to get trips from the select query filters
func (r *PgxTripRepository) getTrips(ctx context.Context, filterQuery string, args ...any) ([]domain.Trip, error) {
	query := FULL_TRIP_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trips", err)
	}
	defer rows.Close()
	domainTrips, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Trip])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Trip{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect trip rows", err)
	}

	return domainTrips, nil
}

func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	query := `
		INSERT INTO trips (
			trip_id, name, description, destination, start_date, end_date,
			currency_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		trip.TripID,
		trip.Name,
		trip.Description,
		trip.Destination,
		trip.StartDate,
		trip.EndDate,
		trip.CurrencyCode,
		trip.IsActive,
		trip.CreatedAt,
		trip.CreatedBy,
		trip.LastUpdatedAt,
		trip.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("trip ID " + trip.TripID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save trip "+trip.TripID, err)
	}
	return nil
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `WHERE t.trip_id = $1`
	trips, err := r.getTrips(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &trips[0], nil
}

func (r *PgxTripRepository) ListTripsByUserID(ctx context.Context, userID string, includeInactive bool) ([]domain.Trip, error) {
	query := `
		JOIN trip_members tm ON t.trip_id = tm.trip_id
		WHERE tm.user_id = $1 AND tm.status = $2`
	if !includeInactive {
		query += ` AND t.is_active = true`
	}
	query += ` ORDER BY t.start_date DESC`

	return r.getTrips(ctx, query, userID, domain.StatusApproved)
}

func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	query := `
		UPDATE trips
		SET name = $1, description = $2, destination = $3, start_date = $4, end_date = $5,
		    is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE trip_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		trip.Name,
		trip.Description,
		trip.Destination,
		trip.StartDate,
		trip.EndDate,
		trip.IsActive,
		trip.LastUpdatedAt,
		trip.LastUpdatedBy,
		trip.TripID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update trip "+trip.TripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTripRepository) AddTripMember(ctx context.Context, membership domain.TripMember) error {
	query := `
		INSERT INTO trip_members (user_id, trip_id, role, status, joined_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.TripID,
		membership.Role,
		membership.Status,
		membership.JoinedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("user " + membership.UserID + " already has a membership in trip " + membership.TripID)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("user or trip does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to add user "+membership.UserID+" to trip "+membership.TripID, err)
	}
	return nil
}

func (r *PgxTripRepository) FindTripMember(ctx context.Context, userID, tripID string) (*domain.TripMember, error) {
	query := `
		SELECT tm.user_id, u.name AS user_name, tm.trip_id, tm.role, tm.status, tm.joined_at
		FROM trip_members tm
		JOIN users u ON tm.user_id = u.user_id
		WHERE tm.user_id = $1 AND tm.trip_id = $2;
	`
	var m domain.TripMember
	err := r.Pool.QueryRow(ctx, query, userID, tripID).Scan(
		&m.UserID,
		&m.UserName,
		&m.TripID,
		&m.Role,
		&m.Status,
		&m.JoinedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("membership not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find membership of user "+userID+" in trip "+tripID, err)
	}
	return &m, nil
}

func (r *PgxTripRepository) UpdateTripMemberStatus(ctx context.Context, userID, tripID string, status domain.TripMemberStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE trip_members
		SET status = $3
		WHERE user_id = $1 AND trip_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, tripID, status)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update membership status for user "+userID+" in trip "+tripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("membership not found")
	}
	return nil
}

func (r *PgxTripRepository) ListTripMembers(ctx context.Context, tripID string, statusFilter *domain.TripMemberStatus) ([]domain.TripMember, error) {
	query := `
		SELECT tm.user_id, u.name AS user_name, tm.trip_id, tm.role, tm.status, tm.joined_at
		FROM trip_members tm
		JOIN users u ON tm.user_id = u.user_id
		WHERE tm.trip_id = $1
	`

	var rows pgx.Rows
	var err error
	if statusFilter != nil {
		query += ` AND tm.status = $2 ORDER BY tm.joined_at;`
		rows, err = r.Pool.Query(ctx, query, tripID, *statusFilter)
	} else {
		query += ` ORDER BY tm.joined_at;`
		rows, err = r.Pool.Query(ctx, query, tripID)
	}

	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members for trip "+tripID, err)
	}
	defer rows.Close()

	var members []domain.TripMember
	for rows.Next() {
		var m domain.TripMember
		err := rows.Scan(
			&m.UserID,
			&m.UserName,
			&m.TripID,
			&m.Role,
			&m.Status,
			&m.JoinedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trip member row", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trip member rows", err)
	}

	return members, nil
}
