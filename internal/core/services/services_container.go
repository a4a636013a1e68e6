package services

import (
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Stay = NewStayService(repos.RoomRepo, repos.StayRepo, repos.OrderRepo, repos.PaymentRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.StayRepo, repos.MenuRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.StayRepo)
	container.Menu = NewMenuService(repos.MenuRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.StayRepo)
	container.Staff = NewStaffService(repos.StaffRepo)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
