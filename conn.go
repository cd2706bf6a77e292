package rowsave

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type PGConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func ConnectPostgres(config PGConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", config.User, config.Password, config.Host, config.Port, config.Database)
	return sqlx.Open("pgx", connStr)
}

// ConnectPostgresPQ opens the same DSN through the lib/pq driver for
// callers already depending on it.
func ConnectPostgresPQ(config PGConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", config.User, config.Password, config.Host, config.Port, config.Database)
	return sqlx.Open("postgres", connStr)
}

type MySQLConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func ConnectMySQL(config MySQLConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", config.User, config.Password, config.Host, config.Port, config.Database)
	return sqlx.Open("mysql", connStr)
}

func ConnectSqlite(path string) (*sqlx.DB, error) {
	return sqlx.Open("sqlite3", path)
}
