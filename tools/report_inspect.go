package main

import (
	"attendance-lab/projection"
	"attendance-lab/repositories"
	"attendance-lab/services"
	"flag"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	limit := flag.Int("limit", 0, "Maximum number of reports, 0 for all")
	colours := flag.Bool("colours", true, "Highlight lessons without overlap")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	var limitReports *int
	if *limit > 0 {
		limitReports = limit
	}
	logger := logs.GetLoggerFromString("ERROR")
	repository := repositories.NewReportRepository(db, logger, limitReports)
	reports, err := services.NewAttendanceService(logger, repository, 1).Reports()
	if err != nil {
		log.Fatal("Error while reading reports: ", err)
	}
	projection.RenderReports(os.Stdout, reports, *colours)
}
