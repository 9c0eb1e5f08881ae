package charts

import (
	"bytes"
	"errors"
	"testing"

	"financezenn-server/src/finance"
	"financezenn-server/src/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestCashflowPNG(t *testing.T) {
	png, err := CashflowPNG(models.FinancialSummary{TotalIncome: 500000, TotalExpense: 200000, Balance: 300000})
	if err != nil {
		t.Fatalf("CashflowPNG: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("expected PNG output")
	}

	if _, err := CashflowPNG(models.FinancialSummary{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestExpensesPNG(t *testing.T) {
	png, err := ExpensesPNG([]finance.CategoryAmount{
		{Category: "Aluguel", Amount: 150000},
		{Category: "Mercado", Amount: 80000},
	})
	if err != nil {
		t.Fatalf("ExpensesPNG: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("expected PNG output")
	}

	if _, err := ExpensesPNG(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
	if _, err := ExpensesPNG([]finance.CategoryAmount{{Category: "x", Amount: 0}}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for zero amounts, got %v", err)
	}
}
