package models

import "time"

// Booking é a entrada do livro de agendamentos. Nunca é apagado
// fisicamente: cancelamento é transição de status, e o índice único
// parcial em (barber_id, scheduled_at) ignora linhas canceladas —
// é ele a autoridade final contra double-booking.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference identifica o agendamento para colaboradores externos
	// (external_reference no Mercado Pago)
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `gorm:"uniqueIndex:uq_barber_slot,where:status <> 'cancelled'" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ScheduledAt time.Time `gorm:"uniqueIndex:uq_barber_slot,where:status <> 'cancelled'" json:"scheduled_at"`

	Services []BarberService `gorm:"many2many:booking_services;" json:"services"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
