package services

import (
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.Stream = NewStreamService(repos.StreamRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.StreamRepo)
	container.Collection = NewCollectionService(repos.CollectionRepo, repos.AssignmentRepo, repos.StreamRepo, repos.LocationRepo)
	container.Assignment = NewAssignmentService(repos.AssignmentRepo, repos.UserRepo, repos.LocationRepo, repos.StreamRepo)
	container.Reporting = NewReportingService(repos.LocationRepo, repos.StreamRepo, repos.BudgetRepo, repos.CollectionRepo, repos.AssignmentRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo)

	return container
}
