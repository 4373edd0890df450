package main

import (
	"attendance-lab/projection"
	"attendance-lab/repositories"
	"attendance-lab/runtime"
	"attendance-lab/services"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns instead of exiting,
// so deferred cleanups such as closing Badger always run.
func run() error {
	// 1. Configuration & Logger
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(".env loading failed: %w", err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Lessons
	lessons, err := runtime.NewLessonLoader(os.DirFS(config.LessonsDir)).LoadAll(".")
	if err != nil {
		return fmt.Errorf("loading lessons from %s: %w", config.LessonsDir, err)
	}
	log.Info("Lessons loaded", "count", len(lessons), "dir", config.LessonsDir)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Compute
	repository := repositories.NewReportRepository(db, log, config.LimitReports)
	service := services.NewAttendanceService(log, repository, config.NumberOfWorkers)
	reports, err := service.ComputeAll(ctx, lessons)
	if err != nil {
		return fmt.Errorf("computing attendance: %w", err)
	}

	// 6. Output
	projection.RenderReports(os.Stdout, reports, config.Colours)
	log.Info("Program stopped cleanly")
	return nil
}
