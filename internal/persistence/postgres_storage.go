package persistence

import (
	"database/sql"
	"errors"

	"github.com/petrijr/passo/pkg/api"
)

// PostgresStorage is an api.Storage backed by a PostgreSQL table.
//
// It expects an *sql.DB that uses a PostgreSQL driver (for example,
// "github.com/lib/pq" or "github.com/jackc/pgx/v5/stdlib").
//
// The caller is responsible for:
//   - importing the driver for its side effects, e.g.:
//     _ "github.com/lib/pq"
//   - providing a DSN via sql.Open.
type PostgresStorage struct {
	db *sql.DB
}

// Ensure PostgresStorage implements the interface.
var _ api.Storage = (*PostgresStorage)(nil)

// NewPostgresStorage initializes the required schema in the given database
// and returns a new PostgresStorage.
func NewPostgresStorage(db *sql.DB) (*PostgresStorage, error) {
	s := &PostgresStorage{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	)
	return err
}

func (s *PostgresStorage) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM progress WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", api.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PostgresStorage) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

func (s *PostgresStorage) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM progress WHERE key = $1`, key)
	return err
}
