package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	Services    []string  `json:"services"`
}
