package repository

import (
	"context"
	"time"

	"lakeview/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Title           string    `gorm:"column:title"`
	Description     string    `gorm:"column:description"`
	Price           float64   `gorm:"column:price"`
	Location        string    `gorm:"column:location"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	MaxParticipants int       `gorm:"column:max_participants"`
	Images          []string  `gorm:"column:images;serializer:json"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (activityModel) TableName() string { return "activities" }

func toDomainActivity(m activityModel) *domain.Activity {
	return &domain.Activity{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Price:           m.Price,
		Location:        m.Location,
		DurationMinutes: m.DurationMinutes,
		MaxParticipants: m.MaxParticipants,
		Images:          m.Images,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toActivityModel(a *domain.Activity) activityModel {
	return activityModel{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Price:           a.Price,
		Location:        a.Location,
		DurationMinutes: a.DurationMinutes,
		MaxParticipants: a.MaxParticipants,
		Images:          a.Images,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	m := toActivityModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainActivity(m)
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	var m activityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainActivity(m), nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	var models []activityModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainActivity(m))
	}
	return out, nil
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	m := toActivityModel(a)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainActivity(m)
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&activityModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
