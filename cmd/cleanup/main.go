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
	doctorsService "github.com/dentwise/booking-service/internal/service/doctors"
	"github.com/dentwise/booking-service/pkg/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report duplicates without deleting anything")
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

	svc := doctorsService.NewService(
		doctorRepo.NewRepository(db),
		appointmentRepo.NewRepository(db),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := svc.CleanupDuplicates(ctx, *dryRun)
	if err != nil {
		log.Fatal("Cleanup failed: %v", err)
	}

	for _, group := range report.Groups {
		log.Info("Duplicate group %q: keeping %s, removing %d copies",
			group.Key, group.Keep.ID, len(group.Remove))
	}

	if report.DryRun {
		log.Info("Dry run: %d duplicate groups found, %d doctors would be removed",
			len(report.Groups), report.RemovedCount)
		return
	}

	log.Info("Cleanup finished: %d doctors removed, %d appointments reassigned",
		report.RemovedCount, report.ReassignedBookings)
}
