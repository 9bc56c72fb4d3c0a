package worker

import (
	"testing"

	"github.com/minicart/internal/models"
)

func TestBuildOrderReceiptSummaryNilOrder(t *testing.T) {
	if got := buildOrderReceiptSummary(nil); got != "" {
		t.Fatalf("expected empty summary for nil order, got %q", got)
	}
}

func TestBuildOrderReceiptSummary(t *testing.T) {
	order := &models.Order{
		OrderNo:     "MC20260101000000123456",
		CustomerID:  7,
		TotalAmount: models.NewMoneyFromFloat(11),
	}

	got := buildOrderReceiptSummary(order)
	want := "order MC20260101000000123456: customer=7 total=11"
	if got != want {
		t.Fatalf("unexpected summary, want %q, got %q", want, got)
	}
}
