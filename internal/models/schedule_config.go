package models

import "time"

// ScheduleConfig é a configuração de expediente do barbeiro.
// Alterada sempre como registro inteiro (replace), nunca campo a campo.
type ScheduleConfig struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex" json:"barber_id"`

	WorkStart       string `gorm:"size:5" json:"work_start"` // "HH:MM"
	WorkEnd         string `gorm:"size:5" json:"work_end"`   // "HH:MM"
	SlotIntervalMin int    `json:"slot_interval_min"`

	// Período de vínculo; fora dele nenhum slot é ofertado
	WorkStartDate *time.Time `json:"work_start_date"`
	WorkEndDate   *time.Time `json:"work_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayOff é uma data de folga anunciada pelo barbeiro
type DayOff struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:uq_barber_day_off" json:"barber_id"`

	Date string `gorm:"size:10;uniqueIndex:uq_barber_day_off" json:"date"` // "2006-01-02"

	CreatedAt time.Time `json:"created_at"`
}
