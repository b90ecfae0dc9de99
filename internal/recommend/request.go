package recommend

import (
	"github.com/go-playground/validator/v10"

	"github.com/finadvisor/finadvisor/internal/catalog"
	"github.com/finadvisor/finadvisor/internal/common"
)

// WireRequest is the JSON shape accepted at the HTTP boundary. All five
// fields are mandatory; pointers distinguish absent from zero-valued.
type WireRequest struct {
	Age            *int     `json:"age" validate:"required,gte=0"`
	Horizon        *string  `json:"horizon" validate:"required"`
	Period         *int     `json:"period" validate:"required,gte=0"`
	InvestmentType *string  `json:"investment_type" validate:"required"`
	Amount         *float64 `json:"amount" validate:"required,gte=0"`
}

var validate = validator.New()

// ParseRequest validates the wire form and converts the free-form enum
// strings into their closed variants. Any missing field or unrecognized
// enum value fails fast with a validation error.
func ParseRequest(w WireRequest) (Request, error) {
	if w.Age == nil || w.Horizon == nil || w.Period == nil || w.InvestmentType == nil || w.Amount == nil {
		return Request{}, common.Errorf(common.KindValidation, "all fields are required: age, horizon, period, investment_type, amount")
	}
	if err := validate.Struct(w); err != nil {
		return Request{}, common.NewError(common.KindValidation, "invalid recommendation request", err)
	}

	horizon, err := catalog.ParseHorizon(*w.Horizon)
	if err != nil {
		return Request{}, common.NewError(common.KindValidation, "invalid recommendation request", err)
	}
	contribution, err := catalog.ParseContribution(*w.InvestmentType)
	if err != nil {
		return Request{}, common.NewError(common.KindValidation, "invalid recommendation request", err)
	}

	return Request{
		Age:          *w.Age,
		Horizon:      horizon,
		PeriodYears:  *w.Period,
		Contribution: contribution,
		Amount:       *w.Amount,
	}, nil
}
