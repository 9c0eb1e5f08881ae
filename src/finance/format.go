package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatBRL renders cents the way the pt-BR locale shows reais: "R$ 1.234,56".
func FormatBRL(cents int64) string {
	d := decimal.New(cents, -2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// percent returns part/whole*100, or zero when whole is zero.
func percent(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole))
}

// FormatPercent renders part/whole as a percentage with the given decimals, "42.5".
func FormatPercent(part, whole int64, places int32) string {
	return percent(part, whole).StringFixed(places)
}

// RoundedPercent is FormatPercent as a number, for JSON payloads.
func RoundedPercent(part, whole int64, places int32) float64 {
	return percent(part, whole).Round(places).InexactFloat64()
}

// FormatBasisPoints renders a basis-point rate as a percentage, 1250 -> "12.5".
func FormatBasisPoints(bp int) string {
	return decimal.New(int64(bp), -2).StringFixed(1)
}

// ApplyRate returns amount*bp/10000 rounded half away from zero to whole cents.
func ApplyRate(amount int64, bp int) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.New(int64(bp), -4)).Round(0).IntPart()
}
