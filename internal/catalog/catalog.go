// Package catalog holds the static investment-option reference data and the
// closed enums used to describe it. The catalog is loaded once and never
// mutated; declaration order is the order recommendations are returned in.
package catalog

import (
	"fmt"
	"strings"
)

// Horizon is the intended holding duration of an investment option.
type Horizon string

const (
	HorizonShort Horizon = "short"
	HorizonLong  Horizon = "long"
	HorizonBoth  Horizon = "both"
)

// ParseHorizon parses a request-supplied horizon, case-insensitively.
// "both" is a catalog wildcard, not a value clients may send.
func ParseHorizon(s string) (Horizon, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return HorizonShort, nil
	case "long":
		return HorizonLong, nil
	default:
		return "", fmt.Errorf("unrecognized horizon %q (want \"short\" or \"long\")", s)
	}
}

// Contribution is the contribution style of an investment option.
type Contribution string

const (
	ContributionLumpsum   Contribution = "lumpsum"
	ContributionRecurring Contribution = "recurring"
	ContributionBoth      Contribution = "both"
)

// ParseContribution parses a request-supplied investment type, case-insensitively.
func ParseContribution(s string) (Contribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lumpsum":
		return ContributionLumpsum, nil
	case "recurring":
		return ContributionRecurring, nil
	default:
		return "", fmt.Errorf("unrecognized investment_type %q (want \"lumpsum\" or \"recurring\")", s)
	}
}

// InvestmentOption is one immutable catalog entry. Age bounds are inclusive,
// MinPeriodYears is the minimum commitment in years. Risk is descriptive only
// and never used for filtering.
type InvestmentOption struct {
	Name           string
	MinAge         int
	MaxAge         int
	Horizon        Horizon
	MinPeriodYears int
	Contribution   Contribution
	Risk           string
}

// Default returns the fixed catalog. Names are unique.
func Default() []InvestmentOption {
	return []InvestmentOption{
		{Name: "Real Estate Investment", MinAge: 25, MaxAge: 50, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionLumpsum, Risk: "medium-high"},
		{Name: "Fixed Deposit", MinAge: 0, MaxAge: 100, Horizon: HorizonBoth, MinPeriodYears: 1, Contribution: ContributionLumpsum, Risk: "low"},
		{Name: "Gold Investment", MinAge: 0, MaxAge: 100, Horizon: HorizonBoth, MinPeriodYears: 0, Contribution: ContributionLumpsum, Risk: "medium"},
		{Name: "Share Market", MinAge: 20, MaxAge: 45, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionBoth, Risk: "high"},
		{Name: "SWP Mutual Funds", MinAge: 35, MaxAge: 100, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionRecurring, Risk: "medium"},
		{Name: "Index Funds", MinAge: 20, MaxAge: 50, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionBoth, Risk: "medium"},
		{Name: "ULIP Plans", MinAge: 25, MaxAge: 45, Horizon: HorizonLong, MinPeriodYears: 10, Contribution: ContributionRecurring, Risk: "medium"},
		{Name: "Post Office Schemes", MinAge: 30, MaxAge: 100, Horizon: HorizonBoth, MinPeriodYears: 1, Contribution: ContributionRecurring, Risk: "low"},
		{Name: "Startup Investment", MinAge: 25, MaxAge: 40, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionLumpsum, Risk: "high"},
		{Name: "Senior Citizen Savings", MinAge: 60, MaxAge: 100, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionLumpsum, Risk: "low"},
		{Name: "REIT", MinAge: 25, MaxAge: 50, Horizon: HorizonLong, MinPeriodYears: 5, Contribution: ContributionLumpsum, Risk: "medium"},
		{Name: "LIC", MinAge: 0, MaxAge: 100, Horizon: HorizonBoth, MinPeriodYears: 0, Contribution: ContributionBoth, Risk: "low-medium"},
	}
}
