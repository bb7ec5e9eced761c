package models

import "time"

// BarberService é um serviço oferecido pelo barbeiro (corte, barba...)
type BarberService struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `json:"barber_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	// Sem default na coluna: com default o gorm omite o zero value e
	// um Create com Active=false viraria ativo em silêncio. Quem cria
	// o registro decide o flag explicitamente.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
