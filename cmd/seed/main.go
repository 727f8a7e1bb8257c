package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"lakeview/internal/database"
	"lakeview/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "lakeview.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Activity{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatal("Constraint setup failed:", err)
	}

	// Cleanup old data (bookings first to satisfy foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM activities")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@lakeview.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Lakeview Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@lakeview.com / admin123")

	guestEmails := []string{"sita@example.com", "ram@example.com", "maya@example.com"}
	for i, email := range guestEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		guest := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleGuest,
			Name:         fmt.Sprintf("Guest %d", i+1),
			Phone:        fmt.Sprintf("+977 98000000%02d", i+1),
		}
		db.Create(&guest)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{
			Title:       "Lakeside Deluxe",
			Description: "Spacious double room with a private balcony over the lake.",
			Price:       4500,
			MaxGuests:   2,
			Images:      []string{"/images/rooms/lakeside-deluxe-1.jpg", "/images/rooms/lakeside-deluxe-2.jpg"},
			Available:   true,
		},
		{
			Title:       "Garden Standard",
			Description: "Cozy room facing the garden, ideal for solo travellers.",
			Price:       2800,
			MaxGuests:   1,
			Images:      []string{"/images/rooms/garden-standard-1.jpg"},
			Available:   true,
		},
		{
			Title:       "Family Suite",
			Description: "Two connected rooms with a shared living area.",
			Price:       7200,
			MaxGuests:   5,
			Images:      []string{"/images/rooms/family-suite-1.jpg"},
			Available:   true,
		},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== ACTIVITIES ==================
	log.Println("Creating activities...")

	activities := []domain.Activity{
		{
			Title:           "Sunrise Boat Tour",
			Description:     "Guided boat ride across Phewa Lake at dawn.",
			Price:           1200,
			Location:        "Lakeview Pier",
			DurationMinutes: 90,
			MaxParticipants: 8,
			Images:          []string{"/images/activities/boat-tour.jpg"},
		},
		{
			Title:           "Sarangkot Paragliding",
			Description:     "Tandem paragliding flight with a certified pilot.",
			Price:           9500,
			Location:        "Sarangkot",
			DurationMinutes: 45,
			MaxParticipants: 4,
			Images:          []string{"/images/activities/paragliding.jpg"},
		},
		{
			Title:       "Evening Yoga Session",
			Description: "Open-air yoga on the terrace, all levels welcome.",
			Price:       800,
			Location:    "Hotel Terrace",
			// No explicit limit, capacity falls back to the default.
			DurationMinutes: 60,
			Images:          []string{"/images/activities/yoga.jpg"},
		},
	}
	for i := range activities {
		db.Create(&activities[i])
	}

	log.Printf("Seed complete: %d rooms, %d activities, %d users", len(rooms), len(activities), len(guestEmails)+1)
}
