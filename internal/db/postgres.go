package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

// InitSQLX returns the sqlx handle used for read-model queries. Postgres gets
// its own lib/pq pool with retries; sqlite shares GORM's connection because
// an in-memory database is private to its connection.
func InitSQLX(driver, dsn string, orm *gorm.DB) (*sqlx.DB, error) {
	if driver == "postgres" {
		return connectPostgres(dsn)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlx.NewDb(sqlDB, "sqlite3"), nil
}

func connectPostgres(dsn string) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return conn, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres (sqlx): %w", err)
}
