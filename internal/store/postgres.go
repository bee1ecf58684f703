package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

const postgresDocumentKey = "print_portal"

// PostgresStore keeps the serialized document as a single row in the
// documents table, replaced wholesale on every save.
type PostgresStore struct {
	db  *pgxpool.Pool
	key string
}

// NewPostgresStore builds a Postgres-backed document store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db, key: postgresDocumentKey}
}

// EnsureSchema creates the documents table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS documents (
        key TEXT PRIMARY KEY,
        payload JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`)
	return err
}

// Load fetches and parses the stored document row.
func (s *PostgresStore) Load(ctx context.Context) (ledger.Document, error) {
	var payload []byte
	row := s.db.QueryRow(ctx, `SELECT payload FROM documents WHERE key = $1`, s.key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Document{}, ErrNoDocument
		}
		return ledger.Document{}, fmt.Errorf("select document: %w", err)
	}

	var doc ledger.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return ledger.Document{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return doc, nil
}

// Save upserts the document row.
func (s *PostgresStore) Save(ctx context.Context, doc ledger.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.db.Exec(ctx, `INSERT INTO documents (key, payload, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`, s.key, payload)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}
