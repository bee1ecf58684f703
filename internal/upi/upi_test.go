package upi

import (
	"context"
	"testing"
)

func TestLink(t *testing.T) {
	got := Link("7033151758-3@ybl", 199)
	want := "upi://pay?pa=7033151758-3%40ybl&pn=PrintPortal&am=199"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStaticProviderApproves(t *testing.T) {
	receipt, err := StaticProvider{}.ConfirmPayment(context.Background(), Confirmation{AccountID: "UIDABC1234", Amount: 199})
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if receipt.Status != "approved" || receipt.Reference == "" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
}
