package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/in-tuned/emotion-engine/internal/config"
	"github.com/in-tuned/emotion-engine/internal/database"
	"github.com/in-tuned/emotion-engine/internal/logging"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB            *sqlx.DB
	LexiconRepo   *database.LexiconRepository
	CandidateRepo *database.CandidateRepository
}

// SetupDatabase creates the database connection and repositories.
func SetupDatabase(cfg *config.Config, logger logging.Logger) (*DatabaseComponents, error) {
	logger.Info("connecting to PostgreSQL database",
		logging.String("host", cfg.Database.Host),
		logging.Int("port", cfg.Database.Port),
		logging.String("database", cfg.Database.Database),
	)

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("database connected successfully")

	return &DatabaseComponents{
		DB:            db,
		LexiconRepo:   database.NewLexiconRepository(db),
		CandidateRepo: database.NewCandidateRepository(db),
	}, nil
}
