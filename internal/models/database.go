package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect connects to the database and runs the schema migration.
//
// When dsn is empty the connection is configured from the environment:
// postgres when DB_HOST is set, a sqlite file under ./data otherwise.
// Tests pass a sqlite file path directly.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &dbLogger{
			Logger: log.Logger,
		},
	}

	if _, ok := os.LookupEnv("DB_HOST"); dsn == "" && ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
	} else {
		if dsn == "" {
			dataDir := filepath.Join(".", "data")
			err = os.MkdirAll(dataDir, os.ModePerm)
			if err != nil {
				return fmt.Errorf("could not create data directory: %w", err)
			}
			dsn = filepath.Join(dataDir, "controle_gastos.db")
		}

		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and is more than
	// enough for a residential installation.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("controle_gastos:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("controle_gastos:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("controle_gastos:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("controle_gastos:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("controle_gastos:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.AutoMigrate(Person{}, Category{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "record not found" error with the
// user-facing message for the entity that was queried.
func queryCallback(db *gorm.DB) {
	if !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	switch db.Statement.Table {
	case "people":
		db.Error = ErrPersonNotFound
	case "categories":
		db.Error = ErrCategoryNotFound
	case "transactions":
		db.Error = ErrTransactionNotFound
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
