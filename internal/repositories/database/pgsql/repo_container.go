package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	tripRepo := newPgxTripRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	activityRepo := newPgxActivityRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		TripRepo:     tripRepo,
		ExpenseRepo:  expenseRepo,
		ActivityRepo: activityRepo,
	}
}
