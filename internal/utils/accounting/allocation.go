package accounting

import (
	"fmt"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Canonical fund names credited by report postings.
const (
	FundNameNational         = "Fondo Nacional"
	FundNameMissions         = "Misiones"
	FundNameSpecialOfferings = "Ofrendas Especiales"
)

// FundContribution is one component of an allocation breakdown: an amount
// destined for a named fund.
type FundContribution struct {
	FundName string
	Amount   decimal.Decimal
	Concept  string
}

// Breakdown is the fund-contribution breakdown computed from a report's raw
// category amounts.
type Breakdown struct {
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	NationalFundDue decimal.Decimal
	DesignatedTotal decimal.Decimal
	OperatingTotal  decimal.Decimal
	LocalRetained   decimal.Decimal
	ClosingBalance  decimal.Decimal

	// Contributions lists the non-zero amounts to credit, one per target fund.
	Contributions []FundContribution
}

// Totals folds the breakdown into the totals stored on the report row.
func (b *Breakdown) Totals() domain.ReportTotals {
	return domain.ReportTotals{
		TotalIncome:     b.TotalIncome,
		TotalExpenses:   b.TotalExpenses,
		NationalFundDue: b.NationalFundDue,
		DesignatedTotal: b.DesignatedTotal,
		OperatingTotal:  b.OperatingTotal,
		ClosingBalance:  b.ClosingBalance,
	}
}

// CalculateBreakdown maps a report's raw category amounts to its fund
// contribution breakdown. Pure function: no side effects, deterministic.
//
// nationalFundDue = round(pct * (tithes + offerings)), rounded half-up once
// at the aggregate, never per line, to avoid cumulative drift. Designated
// categories pass through at 100%. operatingTotal is what the church keeps
// after the national share and designated pass-throughs.
func CalculateBreakdown(amounts domain.CategoryAmounts, nationalPct decimal.Decimal, currencyDecimals int32) (*Breakdown, error) {
	if err := validateAmounts(amounts, currencyDecimals); err != nil {
		return nil, err
	}
	if nationalPct.IsNegative() || nationalPct.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: national fund percentage %s out of range", apperrors.ErrValidation, nationalPct)
	}

	titheBase := amounts.Tithes.Add(amounts.Offerings)
	totalIncome := titheBase.
		Add(amounts.OtherIncome).
		Add(amounts.Missions).
		Add(amounts.SpecialOffering)
	totalExpenses := amounts.Salaries.
		Add(amounts.Rent).
		Add(amounts.Utilities).
		Add(amounts.OtherExpenses)

	// Single aggregate rounding point. decimal.Round rounds half away from
	// zero, which is half-up for the non-negative amounts validated above.
	nationalFundDue := titheBase.Mul(nationalPct).Round(currencyDecimals)
	designatedTotal := amounts.Missions.Add(amounts.SpecialOffering)
	operatingTotal := totalIncome.Sub(nationalFundDue).Sub(designatedTotal)
	localRetained := titheBase.Sub(nationalFundDue)
	closingBalance := totalIncome.Sub(nationalFundDue).Sub(designatedTotal).Sub(totalExpenses)

	b := &Breakdown{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NationalFundDue: nationalFundDue,
		DesignatedTotal: designatedTotal,
		OperatingTotal:  operatingTotal,
		LocalRetained:   localRetained,
		ClosingBalance:  closingBalance,
	}

	for _, c := range []FundContribution{
		{FundName: FundNameNational, Amount: nationalFundDue, Concept: "Aporte fondo nacional"},
		{FundName: FundNameMissions, Amount: amounts.Missions, Concept: "Ofrenda misiones"},
		{FundName: FundNameSpecialOfferings, Amount: amounts.SpecialOffering, Concept: "Ofrenda especial"},
	} {
		if c.Amount.IsPositive() {
			b.Contributions = append(b.Contributions, c)
		}
	}

	return b, nil
}

func validateAmounts(amounts domain.CategoryAmounts, currencyDecimals int32) error {
	fields := map[string]decimal.Decimal{
		"tithes":          amounts.Tithes,
		"offerings":       amounts.Offerings,
		"otherIncome":     amounts.OtherIncome,
		"missions":        amounts.Missions,
		"specialOffering": amounts.SpecialOffering,
		"salaries":        amounts.Salaries,
		"rent":            amounts.Rent,
		"utilities":       amounts.Utilities,
		"otherExpenses":   amounts.OtherExpenses,
	}
	for name, v := range fields {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrValidation, name, v)
		}
		// Truncate-and-compare rather than inspecting the exponent: a decimal
		// with trailing zeros (e.g. 10.50 at two places) is still exact.
		if !v.Equal(v.Truncate(currencyDecimals)) {
			return fmt.Errorf("%w: %s exceeds the currency precision of %d decimal places, got %s", apperrors.ErrValidation, name, currencyDecimals, v)
		}
	}
	return nil
}
