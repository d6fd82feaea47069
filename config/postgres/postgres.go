package postgres

import (
	models "Uno/models/postgres"
	"Uno/utils/logger"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds the connection string from the POSTGRES_* variables
func DSN() string {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	database := os.Getenv("POSTGRES_DATABASE")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", user, password, host, port, database)
	if os.Getenv("POSTGRES_SSLMODE") != "" {
		dsn += "?sslmode=" + os.Getenv("POSTGRES_SSLMODE")
	}
	return dsn
}

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM() (*gorm.DB, error) {
	// NOTE: the pq driver owns the connection, GORM only wraps it
	sqlDB, err := sql.Open("postgres", DSN())
	if err != nil {
		logger.Errorf("[POSTGRES-ERROR] Error opening PostgreSQL connection: %v", err)
		return nil, err
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig(os.Getenv("VERBOSE_POSTGRES") == "true"))
	if err != nil {
		logger.Errorf("[POSTGRES-ERROR] Error connecting to PostgreSQL with GORM: %v", err)
		return nil, err
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		logger.Errorf("[POSTGRES-ERROR] Error pinging PostgreSQL: %v", err)
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

func gormConfig(verbose bool) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if verbose {
		cfg.Logger = gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
			gormlogger.Config{
				SlowThreshold:             time.Second,     // Slow SQL threshold
				LogLevel:                  gormlogger.Info, // Log level (Silent, Error, Warn, Info)
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
	} else {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return cfg
}

// Models lists every table owned by the service, in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Game{},
		&models.Card{},
		&models.PlayerGameState{},
		&models.Score{},
		&models.GameHistory{},
		&models.Tracking{},
	}
}

// MigrateDatabase migrates the GORM models to the PostgreSQL database
func MigrateDatabase(db *gorm.DB) error {
	// NOTE: for more info, execute db.Debug().AutoMigrate(...)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	logger.Info("PostgreSQL database migrated successfully")
	return nil
}
