package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gessotrack/backend/pkg/config"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var pluralIES = regexp.MustCompile("ies$")

// Connect opens the configured database, registers the error translation
// callbacks and migrates the schema.
func Connect(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer. A single connection prevents SQLITE_BUSY errors
	if cfg.Driver != config.DriverMySQL {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.Tracing {
		if err := db.Use(otelgorm.NewPlugin()); err != nil {
			return nil, fmt.Errorf("failed to register tracing plugin: %w", err)
		}
	}

	if err := registerCallbacks(db); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// sqliteDSN enables foreign key enforcement unless the DSN already configures pragmas.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}
	return dsn + "?_pragma=foreign_keys(1)"
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "gesso:after_query", queryCallback},
		{db.Callback().Query().After("*"), "gesso:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "gesso:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "gesso:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "gesso:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "gesso:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "gesso:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "gesso:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return fmt.Errorf("registering callback %s: %w", c.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName derives a readable singular resource name from a table name.
func resourceName(table string) string {
	if table == (CostEntry{}).TableName() {
		return "cost entry"
	}

	name := strings.TrimPrefix(table, "project_")
	name = strings.ReplaceAll(name, "_", " ")
	name = pluralIES.ReplaceAllString(name, "y")
	return strings.TrimSuffix(name, "s")
}

// constraintErrors maps named database constraints to the validation error
// they enforce.
var constraintErrors = map[string]error{
	"amount_positive":              ErrCostAmountNotPositive,
	"quantity_non_negative":        ErrMaterialQuantityNegative,
	"movement_quantity_positive":   ErrQuantityNotPositive,
	"total_value_non_negative":     ErrProjectValueNegative,
	"revision_values_non_negative": ErrRevisionValueNegative,
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// SQLite reports "CHECK constraint failed: name", MySQL "Check constraint 'name' is violated."
	if strings.Contains(strings.ToLower(msg), "check constraint") {
		for name, err := range constraintErrors {
			if strings.Contains(msg, name) {
				db.Error = err
				return
			}
		}
	}

	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "a foreign key constraint fails") {
		db.Error = ErrReferenceNotFound
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

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Project{}, Material{}, CostEntry{}, BudgetRevision{}, InventoryMovement{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
