package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
	notAvailable   = "N/A"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Money formata em reais: 1234.5 -> "R$ 1.234,50". Só a parte inteira passa pelo printer.
func Money(value decimal.Decimal) string {
	rounded := value.Round(2)

	intPart, fracPart, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%d", n)
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	return "R$ " + sign + grouped + "," + fracPart
}

func Integer(value int64) string {
	return printer.Sprintf("%d", value)
}

func Date(value any) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(dateLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return Date(*v)
	default:
		return ""
	}
}

func DateTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dateTimeLayout)
}

// OrNA devolve "N/A" para textos ausentes ou vazios
func OrNA(value *string) string {
	if value == nil || *value == "" {
		return notAvailable
	}
	return *value
}

func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
