package models

// FinancialSummary is derived on every request and never persisted.
type FinancialSummary struct {
	TotalIncome          int64         `json:"totalIncome"`
	TotalExpense         int64         `json:"totalExpense"`
	Balance              int64         `json:"balance"`
	TotalDebt            int64         `json:"totalDebt"`
	TotalInvested        int64         `json:"totalInvested"`
	TotalInvestmentValue int64         `json:"totalInvestmentValue"`
	Patrimonio           int64         `json:"patrimonio"`
	TotalGoalAmount      int64         `json:"totalGoalAmount"`
	TotalGoalProgress    int64         `json:"totalGoalProgress"`
	RecentTransactions   []Transaction `json:"recentTransactions"`
	Params               UserParams    `json:"params"`
}
