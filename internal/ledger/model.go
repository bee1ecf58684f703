package ledger

import "time"

// Account types and their one-time activation prices in rupees. The price is
// captured on the account at registration time and never recomputed.
const (
	TypeRetailer    = "retailer"
	TypeDistributor = "distributor"

	PriceRetailer    int64 = 199
	PriceDistributor int64 = 499
)

// Account activation states. An account starts pending and becomes active
// once its wallet balance reaches its price. Active is terminal.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Account is a registered retailer or distributor with its own wallet.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Type      string    `json:"type"`
	Price     int64     `json:"price"`
	Wallet    int64     `json:"wallet"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Administrator holds the portal's single admin credential pair.
type Administrator struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Document is the whole persisted state: every account, the administrator
// record and seed metadata. Accounts are ordered newest first.
type Document struct {
	Users     []Account     `json:"users"`
	Admin     Administrator `json:"admin"`
	CreatedAt time.Time     `json:"createdAt"`
	LastUID   string        `json:"lastUid,omitempty"`
}

// NewDocument builds a seed document with no accounts.
func NewDocument(admin Administrator) Document {
	return Document{
		Users:     []Account{},
		Admin:     admin,
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Users = make([]Account, len(d.Users))
	copy(out.Users, d.Users)
	return out
}
