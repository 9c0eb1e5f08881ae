package finance

import (
	"testing"
	"time"

	"financezenn-server/src/models"
)

func TestDebtOverview(t *testing.T) {
	debts := []models.Debt{
		{ID: 1, Amount: 100000, InterestRate: 250, MinPayment: 5000},
		{ID: 2, Amount: 50000, InterestRate: 0, MinPayment: 1000},
	}

	o := DebtOverview(debts)

	if o.TotalDebt != 150000 || o.TotalMinPayment != 6000 {
		t.Errorf("unexpected totals %+v", o)
	}
	if o.Debts[0].EstimatedMonthlyInterest != 2500 {
		t.Errorf("expected 2500, got %d", o.Debts[0].EstimatedMonthlyInterest)
	}
	if o.Debts[1].EstimatedMonthlyInterest != 0 {
		t.Errorf("expected 0, got %d", o.Debts[1].EstimatedMonthlyInterest)
	}

	if empty := DebtOverview(nil); empty.Debts == nil {
		t.Error("expected non-nil debts slice")
	}
}

func TestPortfolioOverview(t *testing.T) {
	invs := []models.Investment{
		{ID: 1, Amount: 100000, CurrentValue: 112345},
		{ID: 2, Amount: 0, CurrentValue: 500},
	}

	o := PortfolioOverview(invs)

	if o.TotalInvested != 100000 || o.TotalCurrentValue != 112845 || o.TotalGain != 12845 {
		t.Errorf("unexpected totals %+v", o)
	}
	if o.GainPercent != 12.85 {
		t.Errorf("expected 12.85, got %v", o.GainPercent)
	}
	if o.Investments[0].GainPercent != 12.35 {
		t.Errorf("expected 12.35, got %v", o.Investments[0].GainPercent)
	}
	if o.Investments[1].GainPercent != 0 {
		t.Errorf("zero invested must yield 0%%, got %v", o.Investments[1].GainPercent)
	}
}

func TestGoalsOverview(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(36 * time.Hour)
	goals := []models.Goal{
		{ID: 1, TargetAmount: 1000, CurrentAmount: 1500, Deadline: &deadline},
		{ID: 2, TargetAmount: 3000, CurrentAmount: 500},
	}

	o := GoalsOverview(goals, now)

	if o.TotalTarget != 4000 || o.TotalProgress != 2000 || o.ProgressPercent != 50 {
		t.Errorf("unexpected totals %+v", o)
	}
	first := o.Goals[0]
	if first.ProgressPercent != 150 || first.BarPercent != 100 || first.Remaining != -500 {
		t.Errorf("unexpected first goal %+v", first)
	}
	if first.DaysLeft == nil || *first.DaysLeft != 2 {
		t.Errorf("expected 2 days left, got %v", first.DaysLeft)
	}
	if o.Goals[1].DaysLeft != nil {
		t.Error("expected nil days left without deadline")
	}
	if o.Goals[1].ProgressPercent != 16.7 {
		t.Errorf("expected 16.7, got %v", o.Goals[1].ProgressPercent)
	}
}

func TestExpensesByCategory(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionExpense, Category: "Mercado", Amount: 300},
		{Type: models.TransactionExpense, Category: "Aluguel", Amount: 1000},
		{Type: models.TransactionIncome, Category: "Salário", Amount: 5000},
		{Type: models.TransactionExpense, Category: "Lazer", Amount: 200},
		{Type: models.TransactionExpense, Category: "Mercado", Amount: 100},
		{Type: models.TransactionExpense, Category: "Bar", Amount: 400},
	}

	got := ExpensesByCategory(txs)

	want := []CategoryAmount{{"Aluguel", 1000}, {"Bar", 400}, {"Mercado", 400}, {"Lazer", 200}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] expected %v, got %v", i, want[i], got[i])
		}
	}
}
