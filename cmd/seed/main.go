package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dancestudio/internal/config"
	"dancestudio/internal/database"
	"dancestudio/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM workshops")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM classes")
	db.Exec("DELETE FROM owner_profiles")
	db.Exec("DELETE FROM users")

	// ================== OWNER ==================
	log.Println("Creating demo owner...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "demo@dancestudio.test",
		PasswordHash: string(hash),
	}
	db.Create(&owner)

	db.Create(&domain.OwnerProfile{
		UserID:     owner.ID,
		FirstName:  "Dana",
		LastName:   "Reyes",
		Address1:   "415 Congress Ave",
		City:       "Austin",
		State:      "TX",
		ZipCode:    "78701",
		StudioName: "Step Up Dance Studio",
		Website:    "https://stepup.example.com",
		Instagram:  "@stepupdance",
	})
	log.Println("Owner created: demo@dancestudio.test / demo123")

	// ================== CLASSES ==================
	log.Println("Creating classes...")
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	levels := domain.ValidLevels()
	styles := []string{"Salsa", "Ballet", "Hip Hop", "Contemporary", "Jazz"}
	for i, style := range styles {
		price := 25.0 + float64(i)*5
		db.Create(&domain.Class{
			OwnerID:     owner.ID,
			Name:        fmt.Sprintf("%s %s", style, levels[i%len(levels)]),
			Description: fmt.Sprintf("Weekly %s class", style),
			Instructor:  fmt.Sprintf("Instructor %d", i+1),
			Day:         days[i%len(days)],
			Time:        fmt.Sprintf("%d:00", 17+i),
			Duration:    "1 hour",
			Location:    "Main Floor",
			Level:       levels[i%len(levels)],
			MaxStudents: 15 + i,
			IsActive:    i != 4, // one inactive class to exercise the filter
			Price:       &price,
		})
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")
	eventTypes := []domain.EventType{
		domain.EventTypeShowcase,
		domain.EventTypeCompetition,
		domain.EventTypeOther,
	}
	for i, et := range eventTypes {
		date := time.Now().AddDate(0, 0, 10+7*i).Format("2006-01-02")
		db.Create(&domain.Event{
			OwnerID:     owner.ID,
			Title:       fmt.Sprintf("Event %d", i+1),
			Description: "Open to all students",
			Date:        date,
			Time:        "18:30",
			City:        "Austin",
			State:       "TX",
			Type:        et,
		})
	}

	// ================== WORKSHOPS ==================
	log.Println("Creating workshops...")
	for i := 0; i < 2; i++ {
		date := time.Now().AddDate(0, 0, 14+7*i).Format("2006-01-02")
		price := 60.0
		db.Create(&domain.Workshop{
			OwnerID:         owner.ID,
			Title:           fmt.Sprintf("Masterclass %d", i+1),
			Description:     "Guest instructor intensive",
			Instructor:      "Guest Pro",
			Date:            date,
			Time:            "2:00 PM",
			Duration:        "3 hours",
			Location:        "Main Floor",
			Level:           domain.LevelAllLevels,
			MaxParticipants: 25,
			Price:           &price,
		})
	}

	// ================== PACKAGES ==================
	log.Println("Creating packages...")
	db.Create(&domain.Package{
		OwnerID:         owner.ID,
		Name:            "Starter Pack",
		Description:     "Five classes, valid two months",
		Price:           110,
		NumberOfClasses: 5,
		ValidityDays:    60,
		IsActive:        true,
	})
	db.Create(&domain.Package{
		OwnerID:         owner.ID,
		Name:            "Unlimited Monthly",
		Description:     "All classes for a month",
		Price:           150,
		NumberOfClasses: domain.UnlimitedClasses,
		ValidityDays:    30,
		IsActive:        true,
	})

	log.Println("Seed completed!")
	log.Println("Demo account: demo@dancestudio.test / demo123")
}
