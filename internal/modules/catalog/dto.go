package catalog

type CreateRoomRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	MaxGuests   int      `json:"maxGuests" binding:"omitempty,gt=0"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

type UpdateRoomRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	MaxGuests   *int     `json:"maxGuests" binding:"omitempty,gt=0"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

type CreateActivityRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,gte=0"`
	Location        string   `json:"location"`
	DurationMinutes int      `json:"durationMinutes" binding:"omitempty,gt=0"`
	MaxParticipants int      `json:"maxParticipants" binding:"omitempty,gt=0"`
	Images          []string `json:"images"`
}

type UpdateActivityRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	Location        *string  `json:"location"`
	DurationMinutes *int     `json:"durationMinutes" binding:"omitempty,gt=0"`
	MaxParticipants *int     `json:"maxParticipants" binding:"omitempty,gt=0"`
	Images          []string `json:"images"`
}
