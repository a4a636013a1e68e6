package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	foliocalc "github.com/kyigit/hotel_folio_app/internal/utils/folio"
)

// stayService provides the guest-stay lifecycle and the folio view.
type stayService struct {
	roomRepo    portsrepo.RoomRepositoryFacade
	stayRepo    portsrepo.StayRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewStayService creates a new StayService.
func NewStayService(roomRepo portsrepo.RoomRepositoryFacade, stayRepo portsrepo.StayRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.StaySvcFacade {
	return &stayService{
		roomRepo:    roomRepo,
		stayRepo:    stayRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.StaySvcFacade = (*stayService)(nil)

// resolveRoom finds the room for a check-in, creating it when the number is
// unknown and reactivating it when it was deactivated.
func (s *stayService) resolveRoom(ctx context.Context, roomNumber string, actorID string, now time.Time) (*domain.Room, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	room, err := s.roomRepo.FindRoomByNumber(ctx, roomNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		newRoom := domain.Room{
			RoomID:     uuid.NewString(),
			RoomNumber: roomNumber,
			IsActive:   true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if saveErr := s.roomRepo.SaveRoom(ctx, newRoom); saveErr != nil {
			return nil, saveErr
		}
		logger.Info("Created room on check-in", slog.String("room_id", newRoom.RoomID), slog.String("room_number", roomNumber))
		return &newRoom, nil
	}

	if !room.IsActive {
		if err := s.roomRepo.SetRoomActive(ctx, room.RoomID, true, actorID, now); err != nil {
			return nil, err
		}
		room.IsActive = true
		logger.Info("Reactivated room on check-in", slog.String("room_id", room.RoomID))
	}

	return room, nil
}

// CheckIn creates a guest and an open stay for the requested room.
func (s *stayService) CheckIn(ctx context.Context, req dto.CheckInRequest, actorID string) (*domain.StayWithDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	roomNumber := strings.TrimSpace(req.RoomNumber)
	guestName := strings.TrimSpace(req.GuestName)
	if roomNumber == "" || guestName == "" {
		return nil, apperrors.NewBadRequestError("guest name and room number are required")
	}

	now := time.Now()
	room, err := s.resolveRoom(ctx, roomNumber, actorID, now)
	if err != nil {
		return nil, err
	}

	// Pre-check for an open stay gives a clean error message; the partial
	// unique index on stays catches the race this check cannot.
	if _, err := s.stayRepo.FindOpenStayByRoomID(ctx, room.RoomID); err == nil {
		return nil, apperrors.ErrRoomOccupied
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	var phone *string
	if p := strings.TrimSpace(req.GuestPhone); p != "" {
		phone = &p
	}
	guest := domain.Guest{
		GuestID:     uuid.NewString(),
		FullName:    guestName,
		Phone:       phone,
		AuditFields: audit,
	}
	if err := s.stayRepo.SaveGuest(ctx, guest); err != nil {
		return nil, err
	}

	stay := domain.Stay{
		StayID:       uuid.NewString(),
		GuestID:      guest.GuestID,
		RoomID:       room.RoomID,
		CheckIn:      now,
		CheckOutPlan: req.CheckOutPlan,
		Status:       domain.StayOpen,
		Note:         req.Note,
		AuditFields:  audit,
	}
	if err := s.stayRepo.SaveStay(ctx, stay); err != nil {
		return nil, err
	}

	logger.Info("Checked in guest",
		slog.String("stay_id", stay.StayID),
		slog.String("room_number", room.RoomNumber),
		slog.String("guest_id", guest.GuestID),
	)

	return s.stayRepo.FindStayWithDetails(ctx, stay.StayID)
}

// ListOpenStays returns all open stays with details and current balances.
func (s *stayService) ListOpenStays(ctx context.Context) ([]domain.StayWithDetails, error) {
	return s.stayRepo.ListOpenStays(ctx)
}

// GetFolio assembles the full bill for one stay. Charges and balance are
// recomputed from current ledger state on every call.
func (s *stayService) GetFolio(ctx context.Context, stayID string) (*domain.Folio, error) {
	stay, err := s.stayRepo.FindStayWithDetails(ctx, stayID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersByStay(ctx, stayID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByStay(ctx, stayID)
	if err != nil {
		return nil, err
	}

	auditLogs, err := s.paymentRepo.ListAuditLogsByStay(ctx, stayID)
	if err != nil {
		return nil, err
	}

	charges := foliocalc.SumCharges(orders)
	paid := foliocalc.SumPayments(payments)

	return &domain.Folio{
		Stay:      *stay,
		Orders:    orders,
		Payments:  payments,
		AuditLogs: auditLogs,
		Charges:   charges,
		Paid:      paid,
		Remaining: foliocalc.Remaining(charges, paid),
	}, nil
}

// CloseStay transitions an open stay to closed. A remaining balance does not
// block the close; the front desk confirms that before calling.
func (s *stayService) CloseStay(ctx context.Context, stayID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	stay, err := s.stayRepo.FindStayByID(ctx, stayID)
	if err != nil {
		return err
	}
	if stay.Status != domain.StayOpen {
		return apperrors.ErrStayClosed
	}

	if err := s.stayRepo.CloseStay(ctx, stayID, time.Now(), actorID); err != nil {
		return err
	}

	logger.Info("Closed stay", slog.String("stay_id", stayID))
	return nil
}
