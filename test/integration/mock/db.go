package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection for integration tests.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once) the shared in-memory database and migrates the given
// models, keyed by table name for lookups in assertion steps.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: models,
	}

	for _, m := range models {
		if err := dbConn.AutoMigrate(m); err != nil {
			panic("failed to migrate test database. err: " + err.Error())
		}
	}

	return newDb
}

// ClearDB truncates every migrated table.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
