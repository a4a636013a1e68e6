package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository implementation over one shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		RoomRepo:      newPgxRoomRepository(pool),
		StayRepo:      newPgxStayRepository(pool),
		MenuRepo:      newPgxMenuRepository(pool),
		OrderRepo:     newPgxOrderRepository(pool),
		PaymentRepo:   newPgxPaymentRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
		StaffRepo:     newPgxStaffUserRepository(pool),
	}
}
