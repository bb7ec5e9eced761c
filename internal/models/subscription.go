package models

import "time"

// Subscription guarda o estado de assinatura do cliente.
// tier/status são espelhados pelo colaborador de pagamento; o núcleo
// de agendamento só lê.
type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"uniqueIndex" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Tier   string `gorm:"size:20;default:'start'" json:"tier"`
	Status string `gorm:"size:20;default:'inactive'" json:"status"`

	CurrentPeriodEnd *time.Time `json:"current_period_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
