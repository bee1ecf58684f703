package portal

import (
	"time"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

// RegisterRequest captures the fields supplied when creating an account.
type RegisterRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Type   string `json:"type"`
}

// TopUpRequest carries a wallet credit amount.
type TopUpRequest struct {
	Amount int64 `json:"amount"`
}

// AdminLoginRequest carries administrator credentials.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Type      string    `json:"type"`
	Price     int64     `json:"price"`
	Wallet    int64     `json:"wallet"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse returns the created account with its payment link.
type RegisterResponse struct {
	Account     AccountResponse `json:"account"`
	PaymentLink string          `json:"payment_link"`
	LastUID     string          `json:"last_uid"`
}

// PaymentResponse returns the account state after a wallet credit.
type PaymentResponse struct {
	Account   AccountResponse `json:"account"`
	Reference string          `json:"reference,omitempty"`
}

func toAccountResponse(account ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Mobile:    account.Mobile,
		Type:      account.Type,
		Price:     account.Price,
		Wallet:    account.Wallet,
		Status:    account.Status,
		CreatedAt: account.CreatedAt,
	}
}
