// Package contract provides the contract offer data model and the cap-accounting
// math shared by the negotiation and trade engines.
package contract

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Money is a dollar amount. Salary-cap figures are whole dollars; nothing in
// the league math needs cents.
type Money int64

// String formats money for agent dialogue and headlines, e.g. "$11,000,000".
func (m Money) String() string {
	if m < 0 {
		return "-$" + humanize.Comma(int64(-m))
	}
	return "$" + humanize.Comma(int64(m))
}

// Offer is the full set of terms a team puts in front of an agent.
// It is a value object: never mutated after construction.
type Offer struct {
	ID                string  `json:"id"`
	Years             int     `json:"years"`
	BaseSalaryPerYear []Money `json:"base_salary_per_year"` // len == Years
	SigningBonus      Money   `json:"signing_bonus"`
	GuaranteedMoney   Money   `json:"guaranteed_money"`
	LTBEIncentives    []Money `json:"ltbe_incentives,omitempty"`  // likely to be earned
	NLTBEIncentives   []Money `json:"nltbe_incentives,omitempty"` // not likely to be earned
	VoidYears         int     `json:"void_years"`
	OffsetLanguage    bool    `json:"offset_language"`
}

// ErrInvalidOffer marks a structurally malformed offer. Callers reject these
// before any evaluation happens.
var ErrInvalidOffer = errors.New("invalid offer")

// NewOffer builds a validated offer with a fresh id.
func NewOffer(years int, basePerYear []Money, signingBonus, guaranteed Money, voidYears int, offset bool) (Offer, error) {
	o := Offer{
		ID:                uuid.NewString(),
		Years:             years,
		BaseSalaryPerYear: basePerYear,
		SigningBonus:      signingBonus,
		GuaranteedMoney:   guaranteed,
		VoidYears:         voidYears,
		OffsetLanguage:    offset,
	}
	if err := o.Validate(); err != nil {
		return Offer{}, err
	}
	return o, nil
}

// Validate checks structural invariants. A valid offer never makes the
// economics functions fail.
func (o Offer) Validate() error {
	if o.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidOffer, o.Years)
	}
	if len(o.BaseSalaryPerYear) != o.Years {
		return fmt.Errorf("%w: %d base salary years for a %d-year deal", ErrInvalidOffer, len(o.BaseSalaryPerYear), o.Years)
	}
	if o.VoidYears < 0 {
		return fmt.Errorf("%w: negative void years", ErrInvalidOffer)
	}
	if o.SigningBonus < 0 || o.GuaranteedMoney < 0 {
		return fmt.Errorf("%w: negative money", ErrInvalidOffer)
	}
	for i, b := range o.BaseSalaryPerYear {
		if b < 0 {
			return fmt.Errorf("%w: negative base salary in year %d", ErrInvalidOffer, i+1)
		}
	}
	if o.GuaranteedMoney > TotalValue(o) {
		return fmt.Errorf("%w: guaranteed %s exceeds total value %s", ErrInvalidOffer, o.GuaranteedMoney, TotalValue(o))
	}
	return nil
}
