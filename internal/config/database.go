package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aryavats2/interview-coach/internal/models"
)

// Databases holds the two independent stores. Each is a connection pool;
// repositories borrow a connection per call.
type Databases struct {
	Interview *gorm.DB
	Chat      *gorm.DB
}

func InitDatabases(cfg *Config) (*Databases, error) {
	interviewDB, err := openDatabase(cfg, cfg.Database.InterviewDB, cfg.Database.InterviewDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open interview database: %w", err)
	}

	chatDB, err := openDatabase(cfg, cfg.Database.ChatDB, cfg.Database.ChatDSN)
	if err != nil {
		closeDB(interviewDB)
		return nil, fmt.Errorf("failed to open chat database: %w", err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("✅ Databases connected successfully")

	dbs := &Databases{Interview: interviewDB, Chat: chatDB}
	if err := dbs.Migrate(); err != nil {
		dbs.Close()
		return nil, err
	}

	log.Info().Msg("✅ Database migration completed")

	return dbs, nil
}

// Migrate creates the tables when absent. Safe to run on every start.
func (d *Databases) Migrate() error {
	if err := d.Interview.AutoMigrate(&models.InterviewRecord{}); err != nil {
		return fmt.Errorf("failed to migrate interview database: %w", err)
	}

	if err := d.Chat.AutoMigrate(&models.ChatTurn{}, &models.ChatSession{}); err != nil {
		return fmt.Errorf("failed to migrate chat database: %w", err)
	}

	return nil
}

func (d *Databases) Close() {
	closeDB(d.Interview)
	closeDB(d.Chat)
}

// OpenSQLite opens a single sqlite file. Used by tests and the CLI.
func OpenSQLite(path string, logLevel logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
}

func openDatabase(cfg *Config, path, dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	switch cfg.Database.Driver {
	case DriverPostgres:
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
	default:
		return OpenSQLite(path, logLevel)
	}
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("⚠️  Failed to close database")
	}
}
