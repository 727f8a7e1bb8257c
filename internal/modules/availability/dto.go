package availability

import (
	"lakeview/internal/domain"
	"lakeview/internal/repository"
)

type RoomAvailability struct {
	IsAvailable      bool                       `json:"isAvailable"`
	Room             *domain.Room               `json:"room"`
	ConflictingDates []repository.ConflictRange `json:"conflictingDates"`
}

type ActivityAvailability struct {
	CanBook        bool             `json:"canBook"`
	AvailableSpots int              `json:"availableSpots"`
	Activity       *domain.Activity `json:"activity"`
}
