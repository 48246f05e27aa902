package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"opsdiag/adapters/excel"
	"opsdiag/adapters/memory"
	"opsdiag/adapters/postgres"
	"opsdiag/app"
	"opsdiag/domain/diagnosis"
	"opsdiag/internal"
	"opsdiag/internal/config"
	"opsdiag/ports"
	"opsdiag/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.DefaultLogger

	var (
		submissions ports.SubmissionRepository
		diagnoses   ports.DiagnosisRepository
	)
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("connecting to database: %v", err)
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("migrating schema: %v", err)
		}

		submissions = postgres.NewSubmissionRepository(db)
		diagnoses = postgres.NewDiagnosisRepository(db)
		logger.Info("using postgres storage")
	} else {
		submissions = memory.NewSubmissionRepository()
		diagnoses = memory.NewDiagnosisRepository()
		logger.Warn("DATABASE_URL not set, history is in-memory only")
	}

	assembler := diagnosis.NewAssembler(nil)

	application := ui.NewApp(ui.Config{
		Diagnoser:   app.NewDiagnosisService(assembler, submissions, diagnoses, logger),
		Stats:       app.NewStatsService(diagnoses),
		Rescorer:    app.NewRescoreService(assembler, submissions, diagnoses, logger, 8),
		Submissions: submissions,
		Diagnoses:   diagnoses,
		Exporter:    excel.NewExporter(cfg.Export.Dir, cfg.Export.MaxRows),
		Logger:      logger,
	})

	if err := application.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
