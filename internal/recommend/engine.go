// Package recommend implements the rule-based investment recommendation
// matcher. The engine is a pure function over an immutable catalog; all
// request parsing and validation happens at the boundary in ParseRequest.
package recommend

import (
	"github.com/finadvisor/finadvisor/internal/catalog"
)

// Request is a fully validated recommendation request.
type Request struct {
	Age          int
	Horizon      catalog.Horizon
	PeriodYears  int
	Contribution catalog.Contribution

	// Amount is validated at the boundary but intentionally not used for
	// matching. TODO: confirm whether a per-option minimum-investment
	// threshold is intended before wiring it into the predicate.
	Amount float64
}

// Engine matches requests against a fixed catalog.
type Engine struct {
	options []catalog.InvestmentOption
}

// NewEngine constructs an engine over the given catalog. The slice is not
// copied; callers must not mutate it afterwards.
func NewEngine(options []catalog.InvestmentOption) *Engine {
	return &Engine{options: options}
}

// Recommend returns the names of all catalog entries matching the request,
// in catalog declaration order. It is deterministic and side-effect-free.
func (e *Engine) Recommend(req Request) []string {
	recommended := make([]string, 0, len(e.options))
	for _, opt := range e.options {
		if matches(opt, req) {
			recommended = append(recommended, opt.Name)
		}
	}
	return recommended
}

func matches(opt catalog.InvestmentOption, req Request) bool {
	ageOK := req.Age >= opt.MinAge && req.Age <= opt.MaxAge
	horizonOK := opt.Horizon == catalog.HorizonBoth || opt.Horizon == req.Horizon
	periodOK := req.PeriodYears >= opt.MinPeriodYears
	typeOK := opt.Contribution == catalog.ContributionBoth || opt.Contribution == req.Contribution
	return ageOK && horizonOK && periodOK && typeOK
}
