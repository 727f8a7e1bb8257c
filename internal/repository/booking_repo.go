package repository

import (
	"context"
	"encoding/json"
	"time"

	"lakeview/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	UserID             int64      `gorm:"column:user_id"`
	RoomID             *int64     `gorm:"column:room_id"`
	ActivityID         *int64     `gorm:"column:activity_id"`
	BookingType        string     `gorm:"column:booking_type"`
	BookingDate        time.Time  `gorm:"column:booking_date"`
	CheckInDate        *time.Time `gorm:"column:check_in_date"`
	CheckOutDate       *time.Time `gorm:"column:check_out_date"`
	Participants       int        `gorm:"column:participants"`
	Status             string     `gorm:"column:status"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	Amount             float64    `gorm:"column:amount"`
	Currency           string     `gorm:"column:currency"`
	PaymentIntentID    string     `gorm:"column:payment_intent_id"`
	SpecialRequests    *string    `gorm:"column:special_requests"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests, reason string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		UserID:             m.UserID,
		RoomID:             m.RoomID,
		ActivityID:         m.ActivityID,
		BookingType:        domain.BookingType(m.BookingType),
		BookingDate:        m.BookingDate,
		CheckInDate:        m.CheckInDate,
		CheckOutDate:       m.CheckOutDate,
		Participants:       m.Participants,
		Status:             domain.BookingStatus(m.Status),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Amount:             m.Amount,
		Currency:           m.Currency,
		PaymentIntentID:    m.PaymentIntentID,
		SpecialRequests:    requests,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var requests, reason *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		ActivityID:         b.ActivityID,
		BookingType:        string(b.BookingType),
		BookingDate:        b.BookingDate,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		Participants:       b.Participants,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Amount:             b.Amount,
		Currency:           b.Currency,
		PaymentIntentID:    b.PaymentIntentID,
		SpecialRequests:    requests,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

// UpdateStatus overwrites the status directly and returns the updated record.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

type ConflictRange struct {
	CheckIn  time.Time `gorm:"column:check_in_date" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out_date" json:"check_out"`
}

// FindConflicts returns date ranges of non-cancelled bookings for the room
// overlapping [checkIn, checkOut). Touching boundaries do not overlap.
func (r *BookingRepository) FindConflicts(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]ConflictRange, error) {
	var out []ConflictRange
	q := `
SELECT check_in_date, check_out_date
FROM bookings
WHERE room_id = ?
  AND status <> 'cancelled'
  AND check_in_date < ?
  AND check_out_date > ?
ORDER BY check_in_date
`
	tx := r.db.WithContext(ctx).Raw(q, roomID, checkOut, checkIn).Scan(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

// SumParticipants totals participants of non-cancelled bookings for the
// activity on the exact date.
func (r *BookingRepository) SumParticipants(ctx context.Context, activityID int64, date time.Time) (int, error) {
	var total int
	q := `
SELECT COALESCE(SUM(participants), 0)
FROM bookings
WHERE activity_id = ?
  AND booking_date = ?
  AND status <> 'cancelled'
`
	tx := r.db.WithContext(ctx).Raw(q, activityID, date).Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return total, nil
}

// BookingListItem is a booking with the referenced room/activity summary
// joined in, and the owner identity for admin listings.
type BookingListItem struct {
	Booking    domain.Booking `json:"booking"`
	ItemTitle  string         `json:"item_title"`
	ItemImages []string       `json:"item_images,omitempty"`
	ItemPrice  float64        `json:"item_price"`
	UserName   string         `json:"user_name,omitempty"`
	UserEmail  string         `json:"user_email,omitempty"`
}

type bookingListRow struct {
	bookingModel
	ItemTitle  *string  `gorm:"column:item_title"`
	ItemImages *string  `gorm:"column:item_images"`
	ItemPrice  *float64 `gorm:"column:item_price"`
	UserName   *string  `gorm:"column:user_name"`
	UserEmail  *string  `gorm:"column:user_email"`
}

func toListItem(row bookingListRow) BookingListItem {
	item := BookingListItem{Booking: *toDomainBooking(row.bookingModel)}
	if row.ItemTitle != nil {
		item.ItemTitle = *row.ItemTitle
	}
	if row.ItemPrice != nil {
		item.ItemPrice = *row.ItemPrice
	}
	if row.ItemImages != nil && *row.ItemImages != "" {
		// Images are stored as a JSON array by the gorm serializer.
		_ = json.Unmarshal([]byte(*row.ItemImages), &item.ItemImages)
	}
	if row.UserName != nil {
		item.UserName = *row.UserName
	}
	if row.UserEmail != nil {
		item.UserEmail = *row.UserEmail
	}
	return item
}

const bookingListSelect = `
SELECT b.*,
       COALESCE(r.title, a.title)   AS item_title,
       COALESCE(r.images, a.images) AS item_images,
       COALESCE(r.price, a.price)   AS item_price,
       u.name                       AS user_name,
       u.email                      AS user_email
FROM bookings b
LEFT JOIN rooms r      ON r.id = b.room_id
LEFT JOIN activities a ON a.id = b.activity_id
LEFT JOIN users u      ON u.id = b.user_id
`

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]BookingListItem, error) {
	var rows []bookingListRow
	q := bookingListSelect + `WHERE b.user_id = ? ORDER BY b.created_at DESC`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toListItem(row))
	}
	return out, nil
}

type BookingFilter struct {
	Type   string
	Status string
	From   *time.Time
	To     *time.Time
}

func (r *BookingRepository) ListAll(ctx context.Context, f BookingFilter) ([]BookingListItem, error) {
	q := bookingListSelect + `WHERE 1=1`
	args := []interface{}{}

	if f.Type != "" {
		q += ` AND b.booking_type = ?`
		args = append(args, f.Type)
	}
	if f.Status != "" {
		q += ` AND b.status = ?`
		args = append(args, f.Status)
	}
	if f.From != nil && f.To != nil {
		q += ` AND b.created_at >= ? AND b.created_at <= ?`
		args = append(args, *f.From, *f.To)
	}
	q += ` ORDER BY b.created_at DESC`

	var rows []bookingListRow
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toListItem(row))
	}
	return out, nil
}

func (r *BookingRepository) CountActiveForRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ? AND status <> 'cancelled'", roomID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountActiveForActivity(ctx context.Context, activityID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("activity_id = ? AND status <> 'cancelled'", activityID).
		Count(&cnt)
	return cnt, tx.Error
}

type BookingStats struct {
	Total       int64            `json:"total"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByType      map[string]int64 `json:"by_type"`
	PaidRevenue float64          `json:"paid_revenue"`
}

func (r *BookingRepository) Stats(ctx context.Context) (*BookingStats, error) {
	stats := &BookingStats{
		ByStatus: map[string]int64{},
		ByType:   map[string]int64{},
	}

	type bucket struct {
		Key   string `gorm:"column:key"`
		Count int64  `gorm:"column:count"`
	}

	var byStatus []bucket
	tx := r.db.WithContext(ctx).Raw(
		`SELECT status AS key, COUNT(1) AS count FROM bookings GROUP BY status`).Scan(&byStatus)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, b := range byStatus {
		stats.ByStatus[b.Key] = b.Count
		stats.Total += b.Count
	}

	var byType []bucket
	tx = r.db.WithContext(ctx).Raw(
		`SELECT booking_type AS key, COUNT(1) AS count FROM bookings GROUP BY booking_type`).Scan(&byType)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, b := range byType {
		stats.ByType[b.Key] = b.Count
	}

	tx = r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE payment_status = 'paid'`).Scan(&stats.PaidRevenue)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return stats, nil
}
