package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StrategyClass splits the catalog into trades opened before the
// earnings event (capturing run-up volatility) and trades opened on
// the reaction to it.
type StrategyClass int

const (
	PreEarnings StrategyClass = iota
	PostEarnings
)

func (c StrategyClass) String() string {
	switch c {
	case PreEarnings:
		return "pre-earnings"
	case PostEarnings:
		return "post-earnings"
	default:
		return fmt.Sprintf("StrategyClass(%d)", int(c))
	}
}

// Strategy is a scanner strategy identifier. The set is fixed and
// case-sensitive; ids outside it must fail catalog lookup rather than
// be skipped.
type Strategy string

const (
	Call3dPreEarnings        Strategy = "call_3d_preearnings"
	Call7dPreEarnings        Strategy = "call_7d_preearnings"
	Call14dPreEarnings       Strategy = "call_14d_preearnings"
	Strangle4dPreEarnings    Strategy = "strangle_4d_preearnings"
	Strangle7dPreEarnings    Strategy = "strangle_7d_preearnings"
	Strangle14dPreEarnings   Strategy = "strangle_14d_preearnings"
	IronCondorPostEarnings   Strategy = "iron_condor_post_earnings"
	PutSpreadPostEarnings    Strategy = "put_spread_post_earnings"
	LongStraddlePostEarnings Strategy = "long_straddle_post_earnings"
	LongCallPostEarnings     Strategy = "long_call_post_earnings"
	LongPutPostEarnings      Strategy = "long_put_post_earnings"
)

// Strategies returns the full strategy set in stable order.
func Strategies() []Strategy {
	return []Strategy{
		Call3dPreEarnings,
		Call7dPreEarnings,
		Call14dPreEarnings,
		Strangle4dPreEarnings,
		Strangle7dPreEarnings,
		Strangle14dPreEarnings,
		IronCondorPostEarnings,
		PutSpreadPostEarnings,
		LongStraddlePostEarnings,
		LongCallPostEarnings,
		LongPutPostEarnings,
	}
}

// EarningsResult classifies the outcome of the previous earnings
// report relative to estimates.
type EarningsResult int

const (
	EarningsBeat EarningsResult = iota
	EarningsMiss
	EarningsInline
)

func (r EarningsResult) String() string {
	switch r {
	case EarningsBeat:
		return "beat"
	case EarningsMiss:
		return "miss"
	case EarningsInline:
		return "inline"
	default:
		return fmt.Sprintf("EarningsResult(%d)", int(r))
	}
}

// ParseEarningsResult accepts the beat/miss/inline labels
// (case-insensitive) or a numeric surprise, where the sign decides
// the classification.
func ParseEarningsResult(s string) (EarningsResult, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beat":
		return EarningsBeat, nil
	case "miss":
		return EarningsMiss, nil
	case "inline":
		return EarningsInline, nil
	}

	surprise, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid earnings result %q", s)
	}
	switch surprise.Sign() {
	case 1:
		return EarningsBeat, nil
	case -1:
		return EarningsMiss, nil
	default:
		return EarningsInline, nil
	}
}
