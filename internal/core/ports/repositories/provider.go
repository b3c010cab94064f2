package repositories

// RepositoryProvider bundles every repository implementation so the
// service container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo       UserRepository
	LocationRepo   LocationRepository
	StreamRepo     StreamRepository
	BudgetRepo     BudgetRepository
	CollectionRepo CollectionRepository
	AssignmentRepo AssignmentRepository
	DashboardRepo  DashboardRepository
}
