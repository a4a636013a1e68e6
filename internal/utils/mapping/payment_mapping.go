package mapping

import (
	"encoding/json"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:          d.PaymentID,
		StayID:             d.StayID,
		Method:             string(d.Method),
		Amount:             d.Amount,
		EntryType:          string(d.EntryType),
		ReferencePaymentID: d.ReferencePaymentID,
		Note:               d.Note,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:          m.PaymentID,
		StayID:             m.StayID,
		Method:             domain.PaymentMethod(m.Method),
		Amount:             m.Amount,
		EntryType:          domain.PaymentEntryType(m.EntryType),
		ReferencePaymentID: m.ReferencePaymentID,
		Note:               m.Note,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	payments := make([]domain.Payment, len(ms))
	for i, m := range ms {
		payments[i] = ToDomainPayment(m)
	}
	return payments
}

// ToModelPaymentAuditLog converts a domain PaymentAuditLog to a model row.
// Metadata is serialized to JSON for the JSONB column.
func ToModelPaymentAuditLog(d domain.PaymentAuditLog) (models.PaymentAuditLog, error) {
	metadata, err := json.Marshal(d.Metadata)
	if err != nil {
		return models.PaymentAuditLog{}, err
	}

	var newMethod *string
	if d.NewMethod != nil {
		s := string(*d.NewMethod)
		newMethod = &s
	}

	return models.PaymentAuditLog{
		AuditLogID: d.AuditLogID,
		StayID:     d.StayID,
		PaymentID:  d.PaymentID,
		Action:     string(d.Action),
		OldAmount:  d.OldAmount,
		NewAmount:  d.NewAmount,
		OldMethod:  string(d.OldMethod),
		NewMethod:  newMethod,
		Reason:     d.Reason,
		ActorID:    d.ActorID,
		Metadata:   metadata,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// ToDomainPaymentAuditLog converts a model row to a domain PaymentAuditLog.
// Malformed metadata is tolerated and left zero-valued; the row itself is
// append-only and must still be readable.
func ToDomainPaymentAuditLog(m models.PaymentAuditLog) domain.PaymentAuditLog {
	var metadata domain.AuditMetadata
	if len(m.Metadata) > 0 {
		_ = json.Unmarshal(m.Metadata, &metadata)
	}

	var newMethod *domain.PaymentMethod
	if m.NewMethod != nil {
		method := domain.PaymentMethod(*m.NewMethod)
		newMethod = &method
	}

	return domain.PaymentAuditLog{
		AuditLogID: m.AuditLogID,
		StayID:     m.StayID,
		PaymentID:  m.PaymentID,
		Action:     domain.AuditAction(m.Action),
		OldAmount:  m.OldAmount,
		NewAmount:  m.NewAmount,
		OldMethod:  domain.PaymentMethod(m.OldMethod),
		NewMethod:  newMethod,
		Reason:     m.Reason,
		ActorID:    m.ActorID,
		Metadata:   metadata,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainPaymentAuditLogSlice converts a slice of model audit rows.
func ToDomainPaymentAuditLogSlice(ms []models.PaymentAuditLog) []domain.PaymentAuditLog {
	logs := make([]domain.PaymentAuditLog, len(ms))
	for i, m := range ms {
		logs[i] = ToDomainPaymentAuditLog(m)
	}
	return logs
}
