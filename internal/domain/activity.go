package domain

import "time"

// DefaultMaxParticipants applies when an activity has no explicit limit.
const DefaultMaxParticipants = 20

type Activity struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Price           float64   `json:"price" validate:"required,gte=0"` // per participant
	Location        string    `json:"location,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	MaxParticipants int       `json:"max_participants,omitempty"`
	Images          []string  `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Capacity returns the participant limit, falling back to the default.
func (a *Activity) Capacity() int {
	if a.MaxParticipants > 0 {
		return a.MaxParticipants
	}
	return DefaultMaxParticipants
}
