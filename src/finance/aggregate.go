package finance

import "financezenn-server/src/models"

// RecentTransactionsLimit is how many trailing transactions the summary carries.
const RecentTransactionsLimit = 5

// Records is one user's snapshot as returned by the record store.
// Transactions must be ordered by date ascending; Params is nil when the
// user never saved parameters.
type Records struct {
	UserID       int64
	Transactions []models.Transaction
	Investments  []models.Investment
	Debts        []models.Debt
	Goals        []models.Goal
	Params       *models.UserParams
}

// EffectiveParams returns the stored parameters or the defaults.
func EffectiveParams(userID int64, p *models.UserParams) models.UserParams {
	if p == nil {
		return models.DefaultUserParams(userID)
	}
	return *p
}

// Summarize reduces the records into a FinancialSummary.
func Summarize(r Records) models.FinancialSummary {
	params := EffectiveParams(r.UserID, r.Params)

	var s models.FinancialSummary
	for _, t := range r.Transactions {
		switch t.Type {
		case models.TransactionIncome:
			s.TotalIncome += t.Amount
		case models.TransactionExpense:
			s.TotalExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense

	for _, d := range r.Debts {
		s.TotalDebt += d.Amount
	}
	for _, i := range r.Investments {
		s.TotalInvested += i.Amount
		s.TotalInvestmentValue += i.CurrentValue
	}
	s.Patrimonio = params.Caixa + s.TotalInvestmentValue

	for _, g := range r.Goals {
		s.TotalGoalAmount += g.TargetAmount
		s.TotalGoalProgress += g.CurrentAmount
	}

	s.RecentTransactions = recent(r.Transactions, RecentTransactionsLimit)
	s.Params = params
	return s
}

// recent copies the tail of txs so the summary never aliases the caller's slice.
func recent(txs []models.Transaction, n int) []models.Transaction {
	start := len(txs) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.Transaction, len(txs)-start)
	copy(out, txs[start:])
	return out
}
