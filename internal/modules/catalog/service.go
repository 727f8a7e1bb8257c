package catalog

import (
	"context"
	"errors"

	"lakeview/internal/domain"
	"lakeview/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	rooms      RoomRepository
	activities ActivityRepository
	bookings   BookingCounter
}

func NewService(rooms RoomRepository, activities ActivityRepository, bookings BookingCounter) *Service {
	return &Service{rooms: rooms, activities: activities, bookings: bookings}
}

func (s *Service) ListRooms(ctx context.Context, onlyAvailable bool) ([]domain.Room, error) {
	return s.rooms.List(ctx, onlyAvailable)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		MaxGuests:   req.MaxGuests,
		Images:      req.Images,
		Available:   true,
	}
	if req.Available != nil {
		room.Available = *req.Available
	}
	if errs := validator.Validate(room); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		room.Title = *req.Title
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.MaxGuests != nil {
		room.MaxGuests = *req.MaxGuests
	}
	if req.Images != nil {
		room.Images = req.Images
	}
	if req.Available != nil {
		room.Available = *req.Available
	}

	if errs := validator.Validate(room); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	active, err := s.bookings.CountActiveForRoom(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *Service) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *Service) CreateActivity(ctx context.Context, req CreateActivityRequest) (*domain.Activity, error) {
	activity := &domain.Activity{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		Images:          req.Images,
	}
	if errs := validator.Validate(activity); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Service) UpdateActivity(ctx context.Context, id int64, req UpdateActivityRequest) (*domain.Activity, error) {
	activity, err := s.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Price != nil {
		activity.Price = *req.Price
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxParticipants != nil {
		activity.MaxParticipants = *req.MaxParticipants
	}
	if req.Images != nil {
		activity.Images = req.Images
	}

	if errs := validator.Validate(activity); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id int64) error {
	active, err := s.bookings.CountActiveForActivity(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	if err := s.activities.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	return nil
}
