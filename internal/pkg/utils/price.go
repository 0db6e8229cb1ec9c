package utils

import (
	"petgromee-web/internal/pkg/constvars"

	"github.com/shopspring/decimal"
)

var yearlyDiscountFactor = decimal.RequireFromString(constvars.MembershipYearlyDiscountFactor)

func MinorUnitsToMajor(minorUnits int64) decimal.Decimal {
	return decimal.New(minorUnits, -2)
}

// FormatPrice renders minor units with two decimals, 8500 as "$85.00".
func FormatPrice(minorUnits int64) string {
	return constvars.AppCurrencySymbol + MinorUnitsToMajor(minorUnits).StringFixed(2)
}

// FormatPriceWhole renders minor units rounded to whole currency units, 8599 as "$86".
func FormatPriceWhole(minorUnits int64) string {
	return constvars.AppCurrencySymbol + MinorUnitsToMajor(minorUnits).StringFixed(0)
}

// MembershipPrice returns the amount billed per period for the chosen payment frequency.
// Yearly billing is twelve monthly payments less the yearly discount.
func MembershipPrice(monthlyMinorUnits int64, frequency string) decimal.Decimal {
	monthly := MinorUnitsToMajor(monthlyMinorUnits)
	if frequency == constvars.PaymentFrequencyYearly {
		return monthly.Mul(decimal.NewFromInt(constvars.MembershipMonthsPerYear)).Mul(yearlyDiscountFactor)
	}
	return monthly
}

// FormatPlanPrice strips the cents when the amount is integral, "$480" or "$479.90".
func FormatPlanPrice(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.Equal(rounded.Truncate(0)) {
		return constvars.AppCurrencySymbol + rounded.StringFixed(0)
	}
	return constvars.AppCurrencySymbol + rounded.StringFixed(2)
}
