package finance

import (
	"cmp"
	"fmt"
	"slices"

	"financezenn-server/src/models"
)

// Rule names attached to each emitted insight.
const (
	RuleEmergencyReserve  = "emergency_reserve"
	RuleDebtLoad          = "debt_load"
	RuleDebtExceedsIncome = "debt_exceeds_income"
	RuleInvestments       = "investments"
	RuleNetWorthGoal      = "net_worth_goal"
	RuleSavingsGoals      = "savings_goals"
)

// EstimatedMonthlyDebtRateBP is the flat monthly interest assumed for the debt
// insight. It ignores each debt's own interestRate.
const EstimatedMonthlyDebtRateBP = 500

type insightRule struct {
	name string
	eval func(models.FinancialSummary) []models.Insight
}

// rules run in this order; the order breaks priority ties.
var rules = []insightRule{
	{RuleEmergencyReserve, emergencyReserveRule},
	{RuleDebtLoad, debtLoadRule},
	{RuleInvestments, investmentsRule},
	{RuleNetWorthGoal, netWorthGoalRule},
	{RuleSavingsGoals, savingsGoalsRule},
}

// Insights derives the advisory list for a summary, most urgent first.
func Insights(s models.FinancialSummary) []models.Insight {
	out := make([]models.Insight, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.eval(s)...)
	}
	slices.SortStableFunc(out, func(a, b models.Insight) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	return out
}

// RecommendedReserve is monthly expense times the configured reserve months.
func RecommendedReserve(s models.FinancialSummary) int64 {
	return s.TotalExpense * int64(s.Params.MesesReserva)
}

// EstimatedMonthlyInterest applies the flat monthly rate to the total debt.
func EstimatedMonthlyInterest(totalDebt int64) int64 {
	return ApplyRate(totalDebt, EstimatedMonthlyDebtRateBP)
}

func emergencyReserveRule(s models.FinancialSummary) []models.Insight {
	reserve := RecommendedReserve(s)
	caixa := s.Params.Caixa
	if caixa < reserve {
		shortfall := max(reserve-caixa, 0)
		return []models.Insight{{
			Rule:  RuleEmergencyReserve,
			Title: "Construa sua Reserva de Emergência",
			Description: fmt.Sprintf("Você precisa de %s (%d meses de despesas). Atualmente tem %s. Faltam %s.",
				FormatBRL(reserve), s.Params.MesesReserva, FormatBRL(caixa), FormatBRL(shortfall)),
			Category: models.InsightWarning,
			Priority: models.PriorityHigh,
		}}
	}
	return []models.Insight{{
		Rule:  RuleEmergencyReserve,
		Title: "Reserva de Emergência Completa",
		Description: fmt.Sprintf("Parabéns! Você tem %s, o que cobre %d meses de despesas.",
			FormatBRL(caixa), s.Params.MesesReserva),
		Category: models.InsightSuccess,
		Priority: models.PriorityLow,
	}}
}

func debtLoadRule(s models.FinancialSummary) []models.Insight {
	if s.TotalDebt <= 0 {
		return []models.Insight{{
			Rule:        RuleDebtLoad,
			Title:       "Sem Dívidas",
			Description: "Excelente! Você não tem dívidas registradas. Continue assim!",
			Category:    models.InsightSuccess,
			Priority:    models.PriorityLow,
		}}
	}

	out := []models.Insight{{
		Rule:  RuleDebtLoad,
		Title: "Reduza suas Dívidas",
		Description: fmt.Sprintf("Você tem %s em dívidas. Estima-se %s de juros por mês. Priorize pagar dívidas com juros altos.",
			FormatBRL(s.TotalDebt), FormatBRL(EstimatedMonthlyInterest(s.TotalDebt))),
		Category: models.InsightWarning,
		Priority: models.PriorityHigh,
	}}
	if s.TotalDebt > s.TotalIncome {
		out = append(out, models.Insight{
			Rule:  RuleDebtExceedsIncome,
			Title: "Dívida Acima da Renda",
			Description: fmt.Sprintf("Suas dívidas (%s) excedem sua renda mensal (%s). Considere buscar ajuda profissional.",
				FormatBRL(s.TotalDebt), FormatBRL(s.TotalIncome)),
			Category: models.InsightCritical,
			Priority: models.PriorityCritical,
		})
	}
	return out
}

func investmentsRule(s models.FinancialSummary) []models.Insight {
	if s.TotalInvested > 0 {
		gain := s.TotalInvestmentValue - s.TotalInvested
		return []models.Insight{{
			Rule:  RuleInvestments,
			Title: "Seus Investimentos",
			Description: fmt.Sprintf("Você investiu %s e agora tem %s. Ganho: %s.",
				FormatBRL(s.TotalInvested), FormatBRL(s.TotalInvestmentValue), FormatBRL(gain)),
			Category: models.InsightInfo,
			Priority: models.PriorityMedium,
		}}
	}
	return []models.Insight{{
		Rule:        RuleInvestments,
		Title:       "Comece a Investir",
		Description: "Você ainda não tem investimentos. Considere começar a investir para fazer seu dinheiro trabalhar por você.",
		Category:    models.InsightInfo,
		Priority:    models.PriorityMedium,
	}}
}

func netWorthGoalRule(s models.FinancialSummary) []models.Insight {
	meta := s.Params.MetaPatrimonio
	if meta <= 0 {
		return nil
	}
	if s.Patrimonio < meta {
		return []models.Insight{{
			Rule:  RuleNetWorthGoal,
			Title: "Meta de Patrimônio",
			Description: fmt.Sprintf("Sua meta é %s. Atualmente tem %s. Faltam %s.",
				FormatBRL(meta), FormatBRL(s.Patrimonio), FormatBRL(meta-s.Patrimonio)),
			Category: models.InsightInfo,
			Priority: models.PriorityMedium,
		}}
	}
	return []models.Insight{{
		Rule:        RuleNetWorthGoal,
		Title:       "Meta de Patrimônio Atingida",
		Description: fmt.Sprintf("Parabéns! Você atingiu sua meta de %s!", FormatBRL(meta)),
		Category:    models.InsightSuccess,
		Priority:    models.PriorityLow,
	}}
}

func savingsGoalsRule(s models.FinancialSummary) []models.Insight {
	if s.TotalGoalAmount <= 0 {
		return nil
	}
	return []models.Insight{{
		Rule:  RuleSavingsGoals,
		Title: "Progresso nas Metas",
		Description: fmt.Sprintf("Você já economizou %s%% de suas metas. Continue assim!",
			FormatPercent(s.TotalGoalProgress, s.TotalGoalAmount, 1)),
		Category: models.InsightInfo,
		Priority: models.PriorityMedium,
	}}
}
