package services

import (
	"context"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/dto"
)

// StaySvcFacade exposes the guest-stay lifecycle and the folio view.
type StaySvcFacade interface {
	// CheckIn creates a guest and an open stay for the requested room,
	// creating or reactivating the room as needed. Fails with
	// apperrors.ErrRoomOccupied if the room already has an open stay.
	CheckIn(ctx context.Context, req dto.CheckInRequest, actorID string) (*domain.StayWithDetails, error)

	// ListOpenStays returns all open stays with details and current balances.
	ListOpenStays(ctx context.Context) ([]domain.StayWithDetails, error)

	// GetFolio returns the full bill for one stay: orders, ledger, audit trail
	// and the reconciled balance, recomputed from current ledger state.
	GetFolio(ctx context.Context, stayID string) (*domain.Folio, error)

	// CloseStay transitions an open stay to closed. Closing an already-closed
	// stay fails with apperrors.ErrStayClosed. Closing with a remaining balance
	// is allowed; confirming that is the caller's policy, not the ledger's.
	CloseStay(ctx context.Context, stayID string, actorID string) error
}
