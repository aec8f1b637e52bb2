package service

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// FormatMoney renders amount in currency with its symbol and grouping
// ("$1,234.50"). Unknown currencies fall back to the plain decimal followed by
// the code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatAppraisal renders the total of a.
func FormatAppraisal(a models.Appraisal) string {
	return FormatMoney(a.Total, a.Currency)
}
