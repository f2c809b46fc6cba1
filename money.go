package rocksling

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Millions formats an amount expressed in millions of currency cur, e.g. "$1,234.56M".
func Millions(amount decimal.Decimal, cur string) string {
	// to get a never nil currency I need to call the Money constructor
	c := *money.New(0, cur).Currency()
	dec := amount.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(dec.IntPart()) + "M"
}

// Percent formats a fraction as a percentage, 0.1719 is "17.19%".
func Percent(fraction decimal.Decimal) string {
	return fraction.Shift(2).StringFixed(2) + "%"
}

// Multiple formats a multiple, 1.6087 is "1.609x".
func Multiple(m decimal.Decimal) string {
	return m.StringFixed(3) + "x"
}
