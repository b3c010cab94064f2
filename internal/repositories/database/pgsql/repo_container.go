package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		LocationRepo:   newPgxLocationRepository(dbPool),
		StreamRepo:     newPgxStreamRepository(dbPool),
		BudgetRepo:     newPgxBudgetRepository(dbPool),
		CollectionRepo: newPgxCollectionRepository(dbPool),
		AssignmentRepo: newPgxAssignmentRepository(dbPool),
		DashboardRepo:  newPgxDashboardRepository(dbPool),
	}
}
