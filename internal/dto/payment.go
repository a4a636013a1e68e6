package dto

import (
	"time"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the payload for appending a payment entry.
type RecordPaymentRequest struct {
	Method domain.PaymentMethod `json:"method" binding:"required"`
	Amount decimal.Decimal      `json:"amount" binding:"required"`
	Note   string               `json:"note"`
}

// CancelPaymentRequest defines the payload for cancelling a payment.
type CancelPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// AdjustPaymentRequest defines the payload for correcting a payment's amount
// and/or method.
type AdjustPaymentRequest struct {
	NewMethod domain.PaymentMethod `json:"newMethod" binding:"required"`
	NewAmount decimal.Decimal      `json:"newAmount" binding:"required"`
	Reason    string               `json:"reason" binding:"required"`
}

// PaymentResponse defines the data returned for one ledger entry.
type PaymentResponse struct {
	PaymentID          string          `json:"paymentID"`
	StayID             string          `json:"stayID"`
	Method             string          `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	EntryType          string          `json:"entryType"`
	ReferencePaymentID *string         `json:"referencePaymentID,omitempty"`
	Note               string          `json:"note"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// AuditLogResponse defines the data returned for one audit trail row.
type AuditLogResponse struct {
	AuditLogID           string          `json:"auditLogID"`
	PaymentID            string          `json:"paymentID"`
	Action               string          `json:"action"`
	OldAmount            decimal.Decimal `json:"oldAmount"`
	NewAmount            decimal.Decimal `json:"newAmount"`
	OldMethod            string          `json:"oldMethod"`
	NewMethod            *string         `json:"newMethod,omitempty"`
	Reason               string          `json:"reason"`
	ActorID              string          `json:"actorID"`
	ReversalPaymentID    string          `json:"reversalPaymentID"`
	ReplacementPaymentID string          `json:"replacementPaymentID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// AdjustPaymentResponse returns the two ledger rows an adjustment produced.
type AdjustPaymentResponse struct {
	Reversal    PaymentResponse `json:"reversal"`
	Replacement PaymentResponse `json:"replacement"`
}

// ToPaymentResponse converts a domain Payment to a PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.PaymentID,
		StayID:             p.StayID,
		Method:             string(p.Method),
		Amount:             p.Amount,
		EntryType:          string(p.EntryType),
		ReferencePaymentID: p.ReferencePaymentID,
		Note:               p.Note,
		CreatedAt:          p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain Payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}

// ToAuditLogResponse converts a domain PaymentAuditLog to an AuditLogResponse DTO.
func ToAuditLogResponse(l domain.PaymentAuditLog) AuditLogResponse {
	var newMethod *string
	if l.NewMethod != nil {
		s := string(*l.NewMethod)
		newMethod = &s
	}
	return AuditLogResponse{
		AuditLogID:           l.AuditLogID,
		PaymentID:            l.PaymentID,
		Action:               string(l.Action),
		OldAmount:            l.OldAmount,
		NewAmount:            l.NewAmount,
		OldMethod:            string(l.OldMethod),
		NewMethod:            newMethod,
		Reason:               l.Reason,
		ActorID:              l.ActorID,
		ReversalPaymentID:    l.Metadata.ReversalPaymentID,
		ReplacementPaymentID: l.Metadata.ReplacementPaymentID,
		CreatedAt:            l.CreatedAt,
	}
}

// ToAuditLogResponses converts a slice of domain PaymentAuditLogs.
func ToAuditLogResponses(logs []domain.PaymentAuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = ToAuditLogResponse(l)
	}
	return responses
}
