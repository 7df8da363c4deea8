// Package price converts model output into a currency amount.
package price

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kailas-cloud/laptopprice/internal/domain"
)

// DefaultSymbol is the currency the model was trained on.
const DefaultSymbol = "€"

var printer = message.NewPrinter(language.English)

// Price is an untransformed amount in euros.
type Price struct {
	amount float64
}

// FromLog inverts the log1p target transform: amount = exp(x) - 1.
func FromLog(x float64) (Price, error) {
	amount := math.Expm1(x)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, fmt.Errorf("%w: expm1(%v) is not finite", domain.ErrPriceOverflow, x)
	}
	return Price{amount: amount}, nil
}

// Amount returns the unrounded value.
func (p Price) Amount() float64 { return p.amount }

// Format renders the price with thousands separators and two decimals,
// prefixed by symbol, e.g. "€1,234.56".
func (p Price) Format(symbol string) string {
	return symbol + printer.Sprintf("%.2f", p.amount)
}

// String formats the price in euros.
func (p Price) String() string { return p.Format(DefaultSymbol) }
