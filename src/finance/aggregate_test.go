package finance

import (
	"reflect"
	"testing"
	"time"

	"financezenn-server/src/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func tx(id int64, typ models.TransactionType, amount int64, d int) models.Transaction {
	return models.Transaction{ID: id, UserID: 1, Description: "t", Amount: amount, Type: typ, Category: "c", Date: day(d)}
}

func TestSummarizeZeroState(t *testing.T) {
	s := Summarize(Records{UserID: 7})

	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.Balance != 0 || s.TotalDebt != 0 ||
		s.TotalInvested != 0 || s.TotalInvestmentValue != 0 || s.Patrimonio != 0 ||
		s.TotalGoalAmount != 0 || s.TotalGoalProgress != 0 {
		t.Errorf("expected all totals zero, got %+v", s)
	}
	if s.RecentTransactions == nil || len(s.RecentTransactions) != 0 {
		t.Errorf("expected empty non-nil recent transactions, got %#v", s.RecentTransactions)
	}
	want := models.DefaultUserParams(7)
	if s.Params != want {
		t.Errorf("expected default params %+v, got %+v", want, s.Params)
	}
}

func TestSummarizeTotals(t *testing.T) {
	r := Records{
		UserID: 1,
		Transactions: []models.Transaction{
			tx(1, models.TransactionIncome, 500000, 1),
			tx(2, models.TransactionExpense, 120050, 2),
			tx(3, models.TransactionExpense, 79950, 3),
		},
		Investments: []models.Investment{
			{ID: 1, Amount: 100000, CurrentValue: 110000},
			{ID: 2, Amount: 50000, CurrentValue: 45000},
		},
		Debts: []models.Debt{{ID: 1, Amount: 30000}, {ID: 2, Amount: 20000}},
		Goals: []models.Goal{
			{ID: 1, TargetAmount: 100000, CurrentAmount: 25000},
			{ID: 2, TargetAmount: 0, CurrentAmount: 1000},
		},
		Params: &models.UserParams{UserID: 1, Caixa: 40000, MesesReserva: 6},
	}

	s := Summarize(r)

	checks := []struct {
		name      string
		got, want int64
	}{
		{"totalIncome", s.TotalIncome, 500000},
		{"totalExpense", s.TotalExpense, 200000},
		{"balance", s.Balance, 300000},
		{"totalDebt", s.TotalDebt, 50000},
		{"totalInvested", s.TotalInvested, 150000},
		{"totalInvestmentValue", s.TotalInvestmentValue, 155000},
		{"patrimonio", s.Patrimonio, 195000},
		{"totalGoalAmount", s.TotalGoalAmount, 100000},
		{"totalGoalProgress", s.TotalGoalProgress, 26000},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}
	if s.Params.MesesReserva != 6 {
		t.Errorf("expected stored params to win, got %+v", s.Params)
	}
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	tests := []struct {
		name string
		txs  []models.Transaction
	}{
		{"only income", []models.Transaction{tx(1, models.TransactionIncome, 1, 1)}},
		{"only expense", []models.Transaction{tx(1, models.TransactionExpense, 99999, 1)}},
		{"negative balance", []models.Transaction{
			tx(1, models.TransactionIncome, 10, 1),
			tx(2, models.TransactionExpense, 333, 2),
			tx(3, models.TransactionExpense, 1, 3),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(Records{Transactions: tt.txs})
			if s.Balance != s.TotalIncome-s.TotalExpense {
				t.Errorf("balance %d != %d - %d", s.Balance, s.TotalIncome, s.TotalExpense)
			}
		})
	}
}

func TestSummarizeRecentIsTail(t *testing.T) {
	var txs []models.Transaction
	for i := 1; i <= 8; i++ {
		txs = append(txs, tx(int64(i), models.TransactionExpense, 100, i))
	}

	s := Summarize(Records{Transactions: txs})

	if len(s.RecentTransactions) != RecentTransactionsLimit {
		t.Fatalf("expected %d recent, got %d", RecentTransactionsLimit, len(s.RecentTransactions))
	}
	for i, got := range s.RecentTransactions {
		if want := int64(i + 4); got.ID != want {
			t.Errorf("recent[%d]: expected id %d, got %d", i, want, got.ID)
		}
	}

	s.RecentTransactions[0].Amount = 1
	if txs[3].Amount != 100 {
		t.Error("recent transactions alias the input slice")
	}
}

func TestSummarizeRecentShortList(t *testing.T) {
	txs := []models.Transaction{tx(1, models.TransactionIncome, 1, 1), tx(2, models.TransactionIncome, 2, 2)}
	s := Summarize(Records{Transactions: txs})
	if len(s.RecentTransactions) != 2 {
		t.Errorf("expected 2 recent, got %d", len(s.RecentTransactions))
	}
}

func TestSummarizeIsPure(t *testing.T) {
	r := Records{
		UserID:       3,
		Transactions: []models.Transaction{tx(1, models.TransactionIncome, 500, 1), tx(2, models.TransactionExpense, 200, 2)},
		Debts:        []models.Debt{{Amount: 10}},
		Params:       &models.UserParams{UserID: 3, Caixa: 5, MesesReserva: 2},
	}
	a := Summarize(r)
	b := Summarize(r)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected identical output, got %+v and %+v", a, b)
	}
	if r.Params.Caixa != 5 || len(r.Transactions) != 2 {
		t.Error("Summarize mutated its input")
	}
}
