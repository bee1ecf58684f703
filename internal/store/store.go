package store

import (
	"context"
	"errors"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

var (
	// ErrNoDocument means nothing has been persisted yet and the caller
	// should seed a fresh document.
	ErrNoDocument = errors.New("no document stored")

	// ErrCorruptData means the persisted payload does not parse as a document.
	ErrCorruptData = errors.New("corrupt stored document")
)

// Store persists the whole portal document. Save overwrites the previous
// value; there is no merging or partial update.
type Store interface {
	Load(ctx context.Context) (ledger.Document, error)
	Save(ctx context.Context, doc ledger.Document) error
}
