package upi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// PayeeName is the merchant display name carried in every payment link.
const PayeeName = "PrintPortal"

// Link builds an outbound UPI deep link requesting the given amount. The
// link is never parsed back; the payment provider is an unverified external
// collaborator.
func Link(vpa string, amount int64) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d", url.QueryEscape(vpa), PayeeName, amount)
}

// Provider represents the external payment side of the recharge flow.
type Provider interface {
	ConfirmPayment(ctx context.Context, input Confirmation) (Receipt, error)
}

// Confirmation carries the details of a claimed payment.
type Confirmation struct {
	AccountID string
	Amount    int64
}

// Receipt captures the provider's (simulated) acknowledgement.
type Receipt struct {
	Reference string
	Status    string
}

// StaticProvider approves every claimed payment with a synthetic reference.
// It mirrors the manual "I have paid" trust signal of the recharge flow.
type StaticProvider struct{}

// ConfirmPayment acknowledges the payment without any verification.
func (StaticProvider) ConfirmPayment(_ context.Context, _ Confirmation) (Receipt, error) {
	return Receipt{Reference: uuid.NewString(), Status: "approved"}, nil
}
