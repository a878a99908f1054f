package models

import "time"

const (
	TopUpStatusPending   = "pending"
	TopUpStatusCompleted = "completed"
	TopUpStatusFailed    = "failed"
	TopUpStatusCancelled = "cancelled"
)

// CreditTopUp records a credit purchase against the payment provider. The
// row is created as pending and only flipped by the provider webhook.
type CreditTopUp struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	PaymentIntentID string `gorm:"size:255" json:"payment_intent_id"`
	Reference       string `gorm:"size:36;uniqueIndex" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidTopUpStatus(s string) bool {
	switch s {
	case TopUpStatusPending, TopUpStatusCompleted, TopUpStatusFailed, TopUpStatusCancelled:
		return true
	}
	return false
}
