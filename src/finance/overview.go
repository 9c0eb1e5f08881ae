package finance

import (
	"math"
	"time"

	"financezenn-server/src/models"
)

type DebtLine struct {
	models.Debt
	EstimatedMonthlyInterest int64 `json:"estimatedMonthlyInterest"`
}

type DebtSummary struct {
	TotalDebt       int64      `json:"totalDebt"`
	TotalMinPayment int64      `json:"totalMinPayment"`
	Debts           []DebtLine `json:"debts"`
}

// DebtOverview totals the debts and estimates each one's monthly interest
// from its own rate.
func DebtOverview(debts []models.Debt) DebtSummary {
	out := DebtSummary{Debts: make([]DebtLine, 0, len(debts))}
	for _, d := range debts {
		out.TotalDebt += d.Amount
		out.TotalMinPayment += d.MinPayment
		out.Debts = append(out.Debts, DebtLine{
			Debt:                     d,
			EstimatedMonthlyInterest: ApplyRate(d.Amount, d.InterestRate),
		})
	}
	return out
}

type InvestmentLine struct {
	models.Investment
	Gain        int64   `json:"gain"`
	GainPercent float64 `json:"gainPercent"`
}

type PortfolioSummary struct {
	TotalInvested     int64            `json:"totalInvested"`
	TotalCurrentValue int64            `json:"totalCurrentValue"`
	TotalGain         int64            `json:"totalGain"`
	GainPercent       float64          `json:"gainPercent"`
	Investments       []InvestmentLine `json:"investments"`
}

func PortfolioOverview(investments []models.Investment) PortfolioSummary {
	out := PortfolioSummary{Investments: make([]InvestmentLine, 0, len(investments))}
	for _, inv := range investments {
		out.TotalInvested += inv.Amount
		out.TotalCurrentValue += inv.CurrentValue
		out.Investments = append(out.Investments, InvestmentLine{
			Investment:  inv,
			Gain:        inv.Gain(),
			GainPercent: RoundedPercent(inv.Gain(), inv.Amount, 2),
		})
	}
	out.TotalGain = out.TotalCurrentValue - out.TotalInvested
	out.GainPercent = RoundedPercent(out.TotalGain, out.TotalInvested, 2)
	return out
}

type GoalLine struct {
	models.Goal
	ProgressPercent float64 `json:"progressPercent"`
	BarPercent      float64 `json:"barPercent"`
	Remaining       int64   `json:"remaining"`
	DaysLeft        *int    `json:"daysLeft"`
}

type GoalsSummary struct {
	TotalTarget     int64      `json:"totalTarget"`
	TotalProgress   int64      `json:"totalProgress"`
	ProgressPercent float64    `json:"progressPercent"`
	Goals           []GoalLine `json:"goals"`
}

// GoalsOverview reports progress per goal. Percentages are unclamped.
func GoalsOverview(goals []models.Goal, now time.Time) GoalsSummary {
	out := GoalsSummary{Goals: make([]GoalLine, 0, len(goals))}
	for _, g := range goals {
		out.TotalTarget += g.TargetAmount
		out.TotalProgress += g.CurrentAmount
		pct := GoalProgressPercent(g.CurrentAmount, g.TargetAmount)
		line := GoalLine{
			Goal:            g,
			ProgressPercent: RoundedPercent(g.CurrentAmount, g.TargetAmount, 1),
			BarPercent:      ClampPercent(pct),
			Remaining:       g.TargetAmount - g.CurrentAmount,
		}
		if g.Deadline != nil {
			days := daysUntil(now, *g.Deadline)
			line.DaysLeft = &days
		}
		out.Goals = append(out.Goals, line)
	}
	out.ProgressPercent = RoundedPercent(out.TotalProgress, out.TotalTarget, 1)
	return out
}

func daysUntil(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
