package ledger

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidInput covers missing or malformed registration and top-up fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates no account matches the given identifier.
	ErrNotFound = errors.New("account not found")

	// ErrUnauthorized indicates a failed administrator credential check.
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrInvalidAmount rejects negative top-up amounts.
var ErrInvalidAmount = fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)

const (
	uidPrefix   = "UID"
	uidLength   = 7
	uidAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	uidMaxAttempts = 16
)

// RegisterInput captures the fields supplied at registration.
type RegisterInput struct {
	Name   string
	Mobile string
	Type   string
}

// PriceFor returns the activation price for an account type.
func PriceFor(accountType string) (int64, error) {
	switch accountType {
	case TypeRetailer:
		return PriceRetailer, nil
	case TypeDistributor:
		return PriceDistributor, nil
	default:
		return 0, fmt.Errorf("%w: unknown account type %q", ErrInvalidInput, accountType)
	}
}

// Register creates a pending account with a collision-checked UID, inserts it
// at the front of the user list and records it as the last registered UID.
// The document is untouched when validation fails.
func Register(doc *Document, input RegisterInput) (Account, error) {
	name := strings.TrimSpace(input.Name)
	mobile := strings.TrimSpace(input.Mobile)
	if name == "" {
		return Account{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if mobile == "" {
		return Account{}, fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}
	price, err := PriceFor(input.Type)
	if err != nil {
		return Account{}, err
	}

	id, err := generateUID(doc)
	if err != nil {
		return Account{}, err
	}

	account := Account{
		ID:        id,
		Name:      name,
		Mobile:    mobile,
		Type:      input.Type,
		Price:     price,
		Wallet:    0,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	doc.Users = append([]Account{account}, doc.Users...)
	doc.LastUID = account.ID
	return account, nil
}

// FindByID scans the user list for the account with the given identifier.
func FindByID(doc *Document, id string) (Account, error) {
	for _, u := range doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return Account{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// TopUp credits the account's wallet and activates the account once the
// balance reaches its price. Activation is never reverted.
func TopUp(doc *Document, id string, amount int64) (Account, error) {
	if amount < 0 {
		return Account{}, ErrInvalidAmount
	}
	for i := range doc.Users {
		if doc.Users[i].ID != id {
			continue
		}
		doc.Users[i].Wallet += amount
		if doc.Users[i].Wallet >= doc.Users[i].Price {
			doc.Users[i].Status = StatusActive
		}
		return doc.Users[i], nil
	}
	return Account{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// SimulatePayment credits the account by its own price, mirroring a
// successful UPI payment of the outstanding registration fee.
func SimulatePayment(doc *Document, id string) (Account, error) {
	account, err := FindByID(doc, id)
	if err != nil {
		return Account{}, err
	}
	return TopUp(doc, id, account.Price)
}

// Remove deletes the account with the given identifier. Removing an unknown
// identifier is a no-op, so the operation is idempotent.
func Remove(doc *Document, id string) {
	users := doc.Users[:0]
	for _, u := range doc.Users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	doc.Users = users
}

// AuthenticateAdmin checks the supplied credentials against the stored
// administrator record. The stored password may be plain text (compared in
// constant time) or a bcrypt hash.
func AuthenticateAdmin(doc *Document, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(doc.Admin.Username), []byte(username)) == 1

	stored := doc.Admin.Password
	var passOK bool
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		passOK = bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}

	if !userOK || !passOK {
		return ErrUnauthorized
	}
	return nil
}

// generateUID produces a short random token and retries on the unlikely
// collision with an existing account.
func generateUID(doc *Document) (string, error) {
	for attempt := 0; attempt < uidMaxAttempts; attempt++ {
		id, err := randomUID()
		if err != nil {
			return "", err
		}
		if _, err := FindByID(doc, id); errors.Is(err, ErrNotFound) {
			return id, nil
		}
	}
	return "", fmt.Errorf("uid generation exhausted after %d attempts", uidMaxAttempts)
}

func randomUID() (string, error) {
	buf := make([]byte, uidLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	token := make([]byte, uidLength)
	for i, b := range buf {
		token[i] = uidAlphabet[int(b)%len(uidAlphabet)]
	}
	return uidPrefix + string(token), nil
}
