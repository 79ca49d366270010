package contact

import (
	"database/sql"
)

// Store persists contact submissions. Queries use $N placeholders, which
// both the postgres and the sqlite driver understand.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) EnsureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS contact_submissions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
		)
	`)

	return err
}

func (s *Store) Insert(sub Submission) error {
	_, err := s.DB.Exec(`
		INSERT INTO contact_submissions (id, name, email, message, timestamp, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sub.ID, sub.Name, sub.Email, sub.Message, sub.Timestamp, sub.Status)

	return err
}

func (s *Store) UpdateStatus(id, status string) error {
	_, err := s.DB.Exec(`
		UPDATE contact_submissions SET status = $1 WHERE id = $2
	`, status, id)

	return err
}

// ListRecent returns submissions most-recent-first, capped at limit.
func (s *Store) ListRecent(limit int) ([]Submission, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, email, message, timestamp, status
		FROM contact_submissions
		ORDER BY timestamp DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []Submission{}
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.Timestamp, &sub.Status); err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}

	return submissions, rows.Err()
}
