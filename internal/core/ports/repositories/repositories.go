package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RoomRepo      RoomRepositoryFacade
	StayRepo      StayRepositoryFacade
	MenuRepo      MenuRepositoryFacade
	OrderRepo     OrderRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	ReportingRepo ReportingRepository
	StaffRepo     StaffUserRepositoryFacade
}
