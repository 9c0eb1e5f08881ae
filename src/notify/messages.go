package notify

import (
	"fmt"
	"time"

	"financezenn-server/src/finance"
)

// Notification kinds accepted by the notifications endpoint.
const (
	KindDebtDue          = "debt_due"
	KindGoalReached      = "goal_reached"
	KindDailyInsight     = "daily_insight"
	KindEmergencyReserve = "emergency_reserve"
	KindInvestmentUpdate = "investment_update"
)

func DebtDueMessage(debtName string, dueDate time.Time, amount int64) string {
	return fmt.Sprintf("💰 Lembrete: Dívida Vencendo\n\n"+
		"Sua dívida \"%s\" vence em %s.\n"+
		"Valor: %s\n\n"+
		"Acesse seu FinanceZenn para mais detalhes.",
		debtName, dueDate.Format("02/01/2006"), finance.FormatBRL(amount))
}

func GoalReachedMessage(goalName string, amount int64) string {
	return fmt.Sprintf("🎉 Parabéns!\n\n"+
		"Você atingiu sua meta \"%s\"!\n"+
		"Valor: %s\n\n"+
		"Continue assim! Seu futuro financeiro agradece.",
		goalName, finance.FormatBRL(amount))
}

func DailyInsightMessage(insight string) string {
	return fmt.Sprintf("💡 Insight do Dia\n\n%s\n\nAcesse seu FinanceZenn para mais análises.", insight)
}

func EmergencyReserveMessage(current, target int64) string {
	return fmt.Sprintf("🛡️ Reserva de Emergência\n\n"+
		"Progresso: %s%%\n"+
		"Atual: %s\n"+
		"Meta: %s\n\n"+
		"Continue economizando!",
		finance.FormatPercent(current, target, 1), finance.FormatBRL(current), finance.FormatBRL(target))
}

func InvestmentUpdateMessage(investmentName string, gain, invested int64) string {
	emoji := "📈"
	if gain < 0 {
		emoji = "📉"
	}
	return fmt.Sprintf("%s Atualização de Investimento\n\n"+
		"%s\n"+
		"Ganho: %s (%s%%)\n\n"+
		"Acompanhe seu portfólio no FinanceZenn.",
		emoji, investmentName, finance.FormatBRL(gain), finance.FormatPercent(gain, invested, 2))
}
