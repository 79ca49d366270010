package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// OpenDatabase connects to Postgres when DB_HOST is set, otherwise it falls
// back to a local sqlite file so the server runs without any database
// provisioning. Both drivers accept $N placeholders, so the stores share
// one set of queries.
func OpenDatabase() (*sql.DB, error) {
	host, hostExists := os.LookupEnv("DB_HOST")

	if !hostExists {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "portfolio.db"
		}

		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("[DATABASE] could not open sqlite file %s: %w", path, err)
		}

		logrus.Infof("[DATABASE] Using sqlite file %s", path)
		return db, nil
	}

	port, portExists := os.LookupEnv("DB_PORT")
	username, dbUserExists := os.LookupEnv("DB_USER")
	password, dbPassExists := os.LookupEnv("DB_PASS")
	databaseName, dbNameExists := os.LookupEnv("DB_NAME")

	if !portExists || !dbUserExists || !dbPassExists || !dbNameExists {
		return nil, fmt.Errorf("[DATABASE] DB_HOST is set but DB_PORT, DB_USER, DB_PASS or DB_NAME is missing")
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", username, password, host, port, databaseName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("[DATABASE] connection probs: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("[DATABASE] could not ping the db: %w", err)
	}

	logrus.Infof("[DATABASE] Connected to %s", databaseName)
	return db, nil
}
