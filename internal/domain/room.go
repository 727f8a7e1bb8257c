package domain

import "time"

type Room struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Price       float64   `json:"price" validate:"required,gte=0"` // per night
	MaxGuests   int       `json:"max_guests,omitempty"`
	Images      []string  `json:"images,omitempty" gorm:"serializer:json"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
