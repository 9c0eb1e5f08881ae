// Package charts renders dashboard figures as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"financezenn-server/src/finance"
	"financezenn-server/src/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData means there is nothing worth drawing.
var ErrNoData = errors.New("no data to chart")

const (
	width  = 1200
	height = 600
)

var padding = chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50}

func reais(cents int64) float64 {
	return float64(cents) / 100
}

// CashflowPNG draws income, expense and balance as bars, in reais.
func CashflowPNG(s models.FinancialSummary) ([]byte, error) {
	if s.TotalIncome == 0 && s.TotalExpense == 0 {
		return nil, ErrNoData
	}

	balanceColor := chart.ColorBlue
	if s.Balance < 0 {
		balanceColor = chart.ColorOrange
	}

	graph := chart.BarChart{
		Title:      "Fluxo de Caixa",
		Width:      width,
		Height:     height,
		BarWidth:   120,
		Background: chart.Style{Padding: padding, FillColor: chart.ColorWhite},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("R$ %.0f", v.(float64))
			},
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars: []chart.Value{
			{Label: "Receitas", Value: reais(s.TotalIncome), Style: barStyle(chart.ColorGreen)},
			{Label: "Despesas", Value: reais(s.TotalExpense), Style: barStyle(chart.ColorRed)},
			{Label: "Saldo", Value: reais(s.Balance), Style: barStyle(balanceColor)},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render cashflow chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func barStyle(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

// ExpensesPNG draws the expense split per category as a pie.
func ExpensesPNG(categories []finance.CategoryAmount) ([]byte, error) {
	var total int64
	for _, c := range categories {
		if c.Amount > 0 {
			total += c.Amount
		}
	}
	if total == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(categories))
	for _, c := range categories {
		if c.Amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s%%)", c.Category, finance.FormatBRL(c.Amount), finance.FormatPercent(c.Amount, total, 1)),
			Value: reais(c.Amount),
		})
	}

	pie := chart.PieChart{
		Title:      "Despesas por Categoria",
		Width:      width,
		Height:     height,
		Values:     values,
		Background: chart.Style{Padding: padding, FillColor: chart.ColorWhite},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render expenses chart: %w", err)
	}
	return buffer.Bytes(), nil
}
