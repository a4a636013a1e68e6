package services

import (
	"context"
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/utils"
)

// tokenService issues the JWTs that authenticate staff sessions.
type tokenService struct {
	secret         string
	expiryDuration time.Duration
	issuer         string
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, expiryDuration time.Duration, issuer string) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:         secret,
		expiryDuration: expiryDuration,
		issuer:         issuer,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken creates a signed access token for a staff user.
func (s *tokenService) IssueToken(_ context.Context, user *domain.StaffUser) (string, time.Time, error) {
	return utils.GenerateJWT(user.StaffUserID, user.Role, s.secret, s.expiryDuration, s.issuer)
}
