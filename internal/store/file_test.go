package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

func sampleDocument(t *testing.T) ledger.Document {
	t.Helper()
	doc := ledger.NewDocument(ledger.Administrator{Username: "admin", Password: "admin123"})
	account, err := ledger.Register(&doc, ledger.RegisterInput{Name: "Asha", Mobile: "9990001111", Type: ledger.TypeRetailer})
	require.NoError(t, err)
	_, err = ledger.TopUp(&doc, account.ID, 199)
	require.NoError(t, err)
	return doc
}

func requireSameDocument(t *testing.T, want, got ledger.Document) {
	t.Helper()
	require.Equal(t, want.Admin, got.Admin)
	require.Equal(t, want.LastUID, got.LastUID)
	require.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt mismatch")
	require.Len(t, got.Users, len(want.Users))
	for i := range want.Users {
		require.Equal(t, want.Users[i].ID, got.Users[i].ID)
		require.Equal(t, want.Users[i].Name, got.Users[i].Name)
		require.Equal(t, want.Users[i].Mobile, got.Users[i].Mobile)
		require.Equal(t, want.Users[i].Type, got.Users[i].Type)
		require.Equal(t, want.Users[i].Price, got.Users[i].Price)
		require.Equal(t, want.Users[i].Wallet, got.Users[i].Wallet)
		require.Equal(t, want.Users[i].Status, got.Users[i].Status)
		require.True(t, want.Users[i].CreatedAt.Equal(got.Users[i].CreatedAt))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.json")
	s := NewFileStore(path)

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoDocument)

	doc := sampleDocument(t)
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	requireSameDocument(t, doc, loaded)

	// A second save fully replaces the previous document.
	ledger.Remove(&doc, doc.Users[0].ID)
	require.NoError(t, s.Save(ctx, doc))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded.Users)
}

func TestFileStoreCorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestFileStoreEmptyFileIsNoDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoDocument)

	doc := sampleDocument(t)
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	requireSameDocument(t, doc, loaded)

	// The store hands out copies, not aliases of its internal state.
	loaded.Users[0].Wallet = 999_999
	again, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(199), again.Users[0].Wallet)
}
