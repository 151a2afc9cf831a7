package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"reservas/internal/auth"
	"reservas/internal/config"
	"reservas/internal/db"
	apperrors "reservas/internal/errors"
	"reservas/internal/model"
	"reservas/internal/repository"
	"reservas/internal/service"
)

// SeedUser is a user entry of the seed file.
type SeedUser struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"contraseña"`
	Role     string `json:"rol"`
}

// SeedReservation is a reservation entry; the owner is referenced by e-mail.
type SeedReservation struct {
	Type       string `json:"tipo"`
	Location   string `json:"ubicacion"`
	Space      string `json:"espacio"`
	Date       string `json:"fecha"`
	Time       string `json:"hora"`
	Reason     string `json:"motivo"`
	OwnerEmail string `json:"correo_usuario"`
}

// SeedFile is the document read by the seeder.
type SeedFile struct {
	Users        []SeedUser        `json:"usuarios"`
	Reservations []SeedReservation `json:"reservas"`
}

func main() {
	path := flag.String("file", "cmd/seed/seed.example.json", "seed file to load")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gormDB, err := db.NewMySQL(db.DSN(cfg), db.PoolOptions{MaxOpenConns: 1}, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Reservation{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seed, err := loadSeedFile(*path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	log.Printf("Loaded %d users and %d reservations from %s", len(seed.Users), len(seed.Reservations), *path)

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewBcryptHasher(auth.DefaultCost), auth.NewAdminGate(cfg.AdminKey))
	reservationService := service.NewReservationService(repository.NewReservationRepository(gormDB), nil, 0)

	ctx := context.Background()
	created, skipped, err := seedUsers(ctx, authService, cfg.AdminKey, seed.Users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("  - Users created: %d, skipped: %d", created, skipped)

	created, skipped, err = seedReservations(ctx, userRepo, reservationService, seed.Reservations)
	if err != nil {
		log.Fatalf("Failed to seed reservations: %v", err)
	}
	log.Printf("  - Reservations created: %d, skipped: %d", created, skipped)
	log.Printf("Seed completed successfully!")
}

// loadSeedFile reads and decodes a seed document.
func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &seed, nil
}

// seedUsers registers users through the regular registration path, so the
// administrator gate and hashing apply. Existing e-mails are skipped.
func seedUsers(ctx context.Context, svc service.AuthService, adminKey string, users []SeedUser) (created, skipped int, err error) {
	for _, u := range users {
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
			AdminKey: adminKey,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrEmailTaken), errors.Is(err, apperrors.ErrAdminKeyInvalid):
			log.Printf("Skipping user %s: %v", u.Email, err)
			skipped++
		default:
			return created, skipped, fmt.Errorf("user %s: %w", u.Email, err)
		}
	}
	return created, skipped, nil
}

// seedReservations books each entry for its owner; taken slots and unknown owners are skipped.
func seedReservations(ctx context.Context, users repository.UserRepository, svc service.ReservationService, reservations []SeedReservation) (created, skipped int, err error) {
	for _, r := range reservations {
		owner, err := users.FindByEmail(ctx, r.OwnerEmail)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Skipping reservation %s %s %s: owner %s not found", r.Space, r.Date, r.Time, r.OwnerEmail)
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, fmt.Errorf("find owner %s: %w", r.OwnerEmail, err)
		}

		_, err = svc.Create(ctx, service.CreateReservationInput{
			Type:     r.Type,
			Location: r.Location,
			Space:    r.Space,
			Date:     r.Date,
			Time:     r.Time,
			Reason:   r.Reason,
			UserID:   owner.ID,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrSlotTaken), errors.Is(err, apperrors.ErrUnknownUser):
			log.Printf("Skipping reservation %s %s %s: %v", r.Space, r.Date, r.Time, err)
			skipped++
		default:
			return created, skipped, fmt.Errorf("reservation %s %s %s: %w", r.Space, r.Date, r.Time, err)
		}
	}
	return created, skipped, nil
}
