package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/dentwise/booking-service/internal/config"
	appointmentRepo "github.com/dentwise/booking-service/internal/infra/storage/appointment"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
	"github.com/dentwise/booking-service/internal/seed"
	"github.com/dentwise/booking-service/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "NYC Dentist List.csv", "path to the dentist CSV file")
	configPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	seeder := seed.NewSeeder(
		doctorRepo.NewRepository(db),
		userRepo.NewRepository(db),
		appointmentRepo.NewRepository(db),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := seeder.Run(ctx, *csvPath)
	if err != nil {
		log.Fatal("Seeding failed: %v", err)
	}

	log.Info("Seeding finished: %d created, %d skipped, %d demo appointments",
		report.Created, report.Skipped, report.Appointments)
}
