package portal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
	"github.com/aitprint-portal/AITPRINT/internal/notification"
	"github.com/aitprint-portal/AITPRINT/internal/store"
	"github.com/aitprint-portal/AITPRINT/internal/upi"
)

// Service owns the portal document and coordinates ledger operations with the
// persistent store, the UPI provider and the notifier. A single mutex
// serializes all mutations; the store itself stays lock-free because there is
// exactly one writer.
type Service struct {
	mu       sync.Mutex
	doc      ledger.Document
	store    store.Store
	provider upi.Provider
	notifier notification.Notifier
	vpa      string
}

// NewService loads the stored document, seeding a fresh one with the given
// administrator when nothing is persisted yet. A corrupt document is surfaced
// as an error rather than silently reseeded.
func NewService(ctx context.Context, st store.Store, seedAdmin ledger.Administrator, vpa string, provider upi.Provider, notifier notification.Notifier) (*Service, error) {
	if provider == nil {
		provider = upi.StaticProvider{}
	}

	doc, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNoDocument):
		doc = ledger.NewDocument(seedAdmin)
		if err := st.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("seed document: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load document: %w", err)
	}

	return &Service{
		doc:      doc,
		store:    st,
		provider: provider,
		notifier: notifier,
		vpa:      vpa,
	}, nil
}

// Register creates a pending account and returns it together with the UPI
// link for its registration fee.
func (s *Service) Register(ctx context.Context, input ledger.RegisterInput) (ledger.Account, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	account, err := ledger.Register(&next, input)
	if err != nil {
		return ledger.Account{}, "", err
	}
	if err := s.commit(ctx, next); err != nil {
		return ledger.Account{}, "", err
	}

	s.notify(ctx, notification.Message{
		Kind:        notification.KindRegistration,
		Destination: account.Mobile,
		Body:        fmt.Sprintf("Registration created for %s. UID: %s, recharge wallet with %d to activate.", account.Name, account.ID, account.Price),
	})

	return account, upi.Link(s.vpa, account.Price), nil
}

// Get returns the account with the given identifier.
func (s *Service) Get(_ context.Context, id string) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.FindByID(&s.doc, id)
}

// List returns every account, newest first.
func (s *Service) List(_ context.Context) []ledger.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.doc.Clone()
	return snapshot.Users
}

// LastUID returns the identifier of the most recently registered account.
// It is advisory only, used to prefill the recharge form.
func (s *Service) LastUID(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.LastUID
}

// TopUp credits an account's wallet. Administrator credits share this path.
func (s *Service) TopUp(ctx context.Context, id string, amount int64) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topUpLocked(ctx, id, amount)
}

// SimulatePayment confirms the claimed UPI payment with the provider and
// credits the account by its own registration price.
func (s *Service) SimulatePayment(ctx context.Context, id string) (ledger.Account, upi.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := ledger.FindByID(&s.doc, id)
	if err != nil {
		return ledger.Account{}, upi.Receipt{}, err
	}

	receipt, err := s.provider.ConfirmPayment(ctx, upi.Confirmation{AccountID: account.ID, Amount: account.Price})
	if err != nil {
		return ledger.Account{}, upi.Receipt{}, fmt.Errorf("confirm payment: %w", err)
	}

	updated, err := s.topUpLocked(ctx, id, account.Price)
	if err != nil {
		return ledger.Account{}, upi.Receipt{}, err
	}
	return updated, receipt, nil
}

// Remove deletes an account. Unknown identifiers are a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	ledger.Remove(&next, id)
	if len(next.Users) == len(s.doc.Users) {
		return nil
	}
	return s.commit(ctx, next)
}

// AuthenticateAdmin verifies administrator credentials.
func (s *Service) AuthenticateAdmin(_ context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.AuthenticateAdmin(&s.doc, username, password)
}

// PaymentLink builds the UPI link for the account's registration price.
func (s *Service) PaymentLink(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := ledger.FindByID(&s.doc, id)
	if err != nil {
		return "", err
	}
	return upi.Link(s.vpa, account.Price), nil
}

func (s *Service) topUpLocked(ctx context.Context, id string, amount int64) (ledger.Account, error) {
	wasActive := false
	if existing, err := ledger.FindByID(&s.doc, id); err == nil {
		wasActive = existing.Status == ledger.StatusActive
	}

	next := s.doc.Clone()
	account, err := ledger.TopUp(&next, id, amount)
	if err != nil {
		return ledger.Account{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		return ledger.Account{}, err
	}

	if !wasActive && account.Status == ledger.StatusActive {
		s.notify(ctx, notification.Message{
			Kind:        notification.KindAccountActivated,
			Destination: account.Mobile,
			Body:        fmt.Sprintf("Account %s is now active with wallet balance %d.", account.ID, account.Wallet),
		})
	}

	return account, nil
}

// commit persists the candidate document and adopts it only after the save
// succeeds, so failed saves leave the in-memory state untouched.
func (s *Service) commit(ctx context.Context, next ledger.Document) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	s.doc = next
	return nil
}

func (s *Service) notify(ctx context.Context, message notification.Message) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, message)
}
