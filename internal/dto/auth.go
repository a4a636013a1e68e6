package dto

import "github.com/kyigit/hotel_folio_app/internal/core/domain"

// LoginRequest defines the credentials for a staff login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required,min=4"`
}

// StaffUserResponse defines the public data returned for a staff user.
// The PIN hash never leaves the service layer.
type StaffUserResponse struct {
	StaffUserID string `json:"staffUserID"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// LoginResponse carries the issued JWT and the authenticated staff user.
type LoginResponse struct {
	Token string            `json:"token"`
	User  StaffUserResponse `json:"user"`
}

// ToStaffUserResponse converts a domain StaffUser to a StaffUserResponse DTO.
func ToStaffUserResponse(u domain.StaffUser) StaffUserResponse {
	return StaffUserResponse{
		StaffUserID: u.StaffUserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

// ToStaffUserResponses converts a slice of domain StaffUsers.
func ToStaffUserResponses(users []domain.StaffUser) []StaffUserResponse {
	responses := make([]StaffUserResponse, len(users))
	for i, u := range users {
		responses[i] = ToStaffUserResponse(u)
	}
	return responses
}
