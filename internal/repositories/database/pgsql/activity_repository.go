package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
)

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for activity data.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepositoryFacade
var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

var FULL_ACTIVITY_SELECT_QUERY = `
SELECT
	a.activity_id, a.trip_id, a.name, a.description, a.location,
	a.start_date, a.start_time, a.cost_per_person,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
	COUNT(ap.user_id)::int AS participant_count
FROM activities a
LEFT JOIN activity_participants ap ON a.activity_id = ap.activity_id
`

const activityGroupByClause = `
GROUP BY a.activity_id, a.trip_id, a.name, a.description, a.location,
	a.start_date, a.start_time, a.cost_per_person,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
`

// getActivities private func to get activities from the select query filters
func (r *PgxActivityRepository) getActivities(ctx context.Context, filterQuery string, orderQuery string, args ...any) ([]domain.Activity, error) {
	query := FULL_ACTIVITY_SELECT_QUERY + filterQuery + activityGroupByClause + orderQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query activities", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		err := rows.Scan(
			&a.ActivityID,
			&a.TripID,
			&a.Name,
			&a.Description,
			&a.Location,
			&a.StartDate,
			&a.StartTime,
			&a.CostPerPerson,
			&a.CreatedAt,
			&a.CreatedBy,
			&a.LastUpdatedAt,
			&a.LastUpdatedBy,
			&a.ParticipantCount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan activity row", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating activity rows", err)
	}

	return activities, nil
}

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	query := `
		INSERT INTO activities (
			activity_id, trip_id, name, description, location,
			start_date, start_time, cost_per_person,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		activity.ActivityID,
		activity.TripID,
		activity.Name,
		activity.Description,
		activity.Location,
		activity.StartDate,
		activity.StartTime,
		activity.CostPerPerson,
		activity.CreatedAt,
		activity.CreatedBy,
		activity.LastUpdatedAt,
		activity.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("activity ID " + activity.ActivityID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("trip does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save activity "+activity.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	filter := `WHERE a.activity_id = $1`
	activities, err := r.getActivities(ctx, filter, ``, activityID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &activities[0], nil
}

func (r *PgxActivityRepository) ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error) {
	filter := `WHERE a.trip_id = $1`
	order := ` ORDER BY a.start_date, a.start_time, a.created_at`
	return r.getActivities(ctx, filter, order, tripID)
}

func (r *PgxActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	query := `
		UPDATE activities
		SET name = $1, description = $2, location = $3, start_date = $4, start_time = $5,
		    cost_per_person = $6, last_updated_at = $7, last_updated_by = $8
		WHERE activity_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		activity.Name,
		activity.Description,
		activity.Location,
		activity.StartDate,
		activity.StartTime,
		activity.CostPerPerson,
		activity.LastUpdatedAt,
		activity.LastUpdatedBy,
		activity.ActivityID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update activity "+activity.ActivityID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	// activity_participants rows go with the activity via ON DELETE CASCADE
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM activities WHERE activity_id = $1;`, activityID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete activity "+activityID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxActivityRepository) AddParticipant(ctx context.Context, participant domain.ActivityParticipant) error {
	query := `
		INSERT INTO activity_participants (activity_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (activity_id, user_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		participant.ActivityID,
		participant.UserID,
		participant.JoinedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("activity or user does not exist")
		}
		return apperrors.NewAppError(500, "failed to add participant "+participant.UserID+" to activity "+participant.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) RemoveParticipant(ctx context.Context, activityID, userID string) error {
	query := `DELETE FROM activity_participants WHERE activity_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, activityID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove participant "+userID+" from activity "+activityID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("participant not found")
	}
	return nil
}

func (r *PgxActivityRepository) ListParticipants(ctx context.Context, activityID string) ([]domain.ActivityParticipant, error) {
	query := `
		SELECT activity_id, user_id, joined_at
		FROM activity_participants
		WHERE activity_id = $1
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, activityID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query participants for activity "+activityID, err)
	}
	defer rows.Close()

	participants, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ActivityParticipant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ActivityParticipant{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect participant rows", err)
	}
	return participants, nil
}
