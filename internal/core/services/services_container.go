package services

import (
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the trip service first since other services depend on its
	// authorization checks
	container.Trip = NewTripService(repos.TripRepo)
	tripAuthorizer := container.Trip.(portssvc.TripAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.TripRepo, tripAuthorizer)
	container.Activity = NewActivityService(repos.ActivityRepo, repos.TripRepo, tripAuthorizer)

	container.Token = NewTokenService(cfg, container.User)

	return container
}
