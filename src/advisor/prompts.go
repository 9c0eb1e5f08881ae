package advisor

import (
	"fmt"
	"strings"

	"financezenn-server/src/finance"
	"financezenn-server/src/models"
)

// FinancialData is what the advice prompt is built from.
type FinancialData struct {
	TotalIncome          int64
	TotalExpense         int64
	TotalDebt            int64
	TotalInvested        int64
	TotalInvestmentValue int64
	Patrimonio           int64
	TotalGoalAmount      int64
	TotalGoalProgress    int64
	MesesReserva         int
	Caixa                int64
	MetaPatrimonio       int64
}

func FinancialDataFromSummary(s models.FinancialSummary) FinancialData {
	return FinancialData{
		TotalIncome:          s.TotalIncome,
		TotalExpense:         s.TotalExpense,
		TotalDebt:            s.TotalDebt,
		TotalInvested:        s.TotalInvested,
		TotalInvestmentValue: s.TotalInvestmentValue,
		Patrimonio:           s.Patrimonio,
		TotalGoalAmount:      s.TotalGoalAmount,
		TotalGoalProgress:    s.TotalGoalProgress,
		MesesReserva:         s.Params.MesesReserva,
		Caixa:                s.Params.Caixa,
		MetaPatrimonio:       s.Params.MetaPatrimonio,
	}
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func FinancialPrompt(d FinancialData) string {
	reserva := d.TotalExpense * int64(d.MesesReserva)
	falta := max(reserva-d.Caixa, 0)

	var b strings.Builder
	b.WriteString("Você é um consultor financeiro especializado em educação financeira para pessoas endividadas.\n")
	b.WriteString("Analise os seguintes dados financeiros e forneça 3 recomendações práticas, acionáveis e motivadoras:\n\n")
	b.WriteString("DADOS FINANCEIROS:\n")
	fmt.Fprintf(&b, "- Renda Mensal: %s\n", finance.FormatBRL(d.TotalIncome))
	fmt.Fprintf(&b, "- Despesa Mensal: %s\n", finance.FormatBRL(d.TotalExpense))
	fmt.Fprintf(&b, "- Dívidas Totais: %s\n", finance.FormatBRL(d.TotalDebt))
	fmt.Fprintf(&b, "- Investimentos: %s\n", finance.FormatBRL(d.TotalInvested))
	fmt.Fprintf(&b, "- Valor Total Investido: %s\n", finance.FormatBRL(d.TotalInvestmentValue))
	fmt.Fprintf(&b, "- Patrimônio Líquido: %s\n", finance.FormatBRL(d.Patrimonio))
	fmt.Fprintf(&b, "- Caixa Disponível: %s\n", finance.FormatBRL(d.Caixa))
	fmt.Fprintf(&b, "- Meta de Patrimônio: %s\n", finance.FormatBRL(d.MetaPatrimonio))
	fmt.Fprintf(&b, "- Progresso em Metas: %s%%\n\n", finance.FormatPercent(d.TotalGoalProgress, d.TotalGoalAmount, 1))
	b.WriteString("ANÁLISE:\n")
	fmt.Fprintf(&b, "- Tem Reserva de Emergência? %s\n", simNao(d.Caixa >= reserva))
	fmt.Fprintf(&b, "- Falta para Reserva: %s\n", finance.FormatBRL(falta))
	fmt.Fprintf(&b, "- Taxa de Dívida/Renda: %s%%\n", finance.FormatPercent(d.TotalDebt, d.TotalIncome, 1))
	fmt.Fprintf(&b, "- Juros Estimados Mensais: %s\n\n", finance.FormatBRL(finance.EstimatedMonthlyInterest(d.TotalDebt)))
	b.WriteString("Com base nesses dados, forneça:\n")
	b.WriteString("1. UMA recomendação imediata (próximos 7 dias)\n")
	b.WriteString("2. UMA recomendação de médio prazo (próximos 30 dias)\n")
	b.WriteString("3. UMA recomendação de longo prazo (próximos 90 dias)\n\n")
	b.WriteString("Seja motivador, prático e específico. Use linguagem simples e direta.\n")
	b.WriteString("Responda em português brasileiro.")
	return b.String()
}

func DebtPayoffPrompt(debts []models.Debt) string {
	var b strings.Builder
	b.WriteString("Você é um especialista em gestão de dívidas. Analise as seguintes dívidas e crie um plano de quitação priorizado:\n\n")
	b.WriteString("DÍVIDAS:\n")
	for _, d := range debts {
		fmt.Fprintf(&b, "- %s: %s (Taxa: %s%%, Mín: %s)\n",
			d.Name, finance.FormatBRL(d.Amount), finance.FormatBasisPoints(d.InterestRate), finance.FormatBRL(d.MinPayment))
	}
	b.WriteString("\nCom base na análise, forneça:\n")
	b.WriteString("1. Ordem de prioridade para pagar (método avalanche ou bola de neve)\n")
	b.WriteString("2. Estratégia recomendada com justificativa\n")
	b.WriteString("3. Estimativa de tempo para quitação total\n")
	b.WriteString("4. Dicas para acelerar o processo\n\n")
	b.WriteString("Seja prático, motivador e específico. Responda em português brasileiro.")
	return b.String()
}

func InvestmentPrompt(investments []models.Investment) string {
	var b strings.Builder
	b.WriteString("Você é um consultor de investimentos focado em educação financeira. Analise a carteira de investimentos e forneça recomendações:\n\n")
	b.WriteString("INVESTIMENTOS:\n")
	for _, inv := range investments {
		fmt.Fprintf(&b, "- %s (%s): Investido %s, Atual %s (%s%%)\n",
			inv.Name, inv.Type, finance.FormatBRL(inv.Amount), finance.FormatBRL(inv.CurrentValue),
			finance.FormatPercent(inv.Gain(), inv.Amount, 1))
	}
	b.WriteString("\nCom base na análise, forneça:\n")
	b.WriteString("1. Avaliação da diversificação atual\n")
	b.WriteString("2. Recomendações de ajuste (se necessário)\n")
	b.WriteString("3. Oportunidades de otimização\n")
	b.WriteString("4. Dicas para melhorar retornos\n\n")
	b.WriteString("Seja prático, educativo e motivador. Responda em português brasileiro.")
	return b.String()
}
