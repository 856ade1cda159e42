// Offer evaluation — the accept/counter/reject decision and its mood
// transition. Deterministic given session state and inputs; randomness lives
// in the event scheduler, not here.
package negotiation

import (
	"fmt"

	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/team"
)

// Evaluate runs one negotiation round: short-circuits for dead sessions,
// refreshes leverage against the offer on the table, and decides. The session
// is mutated; the response is a value.
func Evaluate(cfg config.Config, s *Session, offer contract.Offer, ctx team.Context) Response {
	// A lockout is absorbing: no round, no leverage, no mood movement.
	if s.State == StateLockedOut {
		return Response{
			Outcome: OutcomeLockedOut,
			NewMood: s.Mood,
			Message: fmt.Sprintf("%s has terminated negotiations (%s).", s.Agent.Name, s.LockoutReason),
		}
	}

	// Phone dead: the week passes, nothing else moves.
	if s.State == StatePhoneDead {
		if s.Round < s.PhoneDeadUntil {
			s.Round++
			return Response{
				Outcome: OutcomePhoneDead,
				NewMood: s.Mood,
				Message: fmt.Sprintf("%s is not taking your calls.", s.Agent.Name),
			}
		}
		// Cooldown expired — back to the table.
		s.State = StateNormal
		s.PhoneDeadUntil = 0
	}

	// Leverage always reflects the most recent proposal.
	s.Leverage = ComputeLeverage(cfg.Leverage, s, offer, ctx)
	s.Round++

	prof := agents.ProfileFor(s.Agent.Archetype)

	// Term length is a hard gate, before any value math.
	if offer.Years > s.Agent.MaxContractLength {
		s.Mood = s.Mood.StepToward(agents.MoodAngry)
		s.noteRejection()
		return Response{
			Outcome: OutcomeTooLong,
			NewMood: s.Mood,
			Message: fmt.Sprintf("%d years? %s won't commit past %d.", offer.Years, s.Agent.Name, s.Agent.MaxContractLength),
		}
	}

	// Financial infeasibility overrides willingness — and the agent knows
	// it's the ledger's fault, not the room's.
	capHit := contract.CapHitYear1(offer)
	if capHit > ctx.CapSpace {
		s.angryStreak = 0
		return Response{
			Outcome: OutcomeCapInfeasible,
			NewMood: s.Mood,
			Message: fmt.Sprintf("The league office would never clear this: a %s cap hit against %s of space.", capHit, ctx.CapSpace),
		}
	}

	fit := 0.0
	if s.MarketValue > 0 {
		fit = float64(contract.AveragePerYear(offer)) / float64(s.MarketValue)
	}
	threshold := acceptThreshold(cfg.Evaluator, s, prof, offer, ctx)

	if fit >= threshold {
		s.State = StateAccepted
		s.Mood = s.Mood.StepToward(agents.MoodExcited)
		s.angryStreak = 0
		return Response{
			Accepted: true,
			Outcome:  OutcomeAccepted,
			NewMood:  s.Mood,
			Message:  fmt.Sprintf("%s shakes on it: %d years, %s a year.", s.Agent.Name, offer.Years, contract.AveragePerYear(offer)),
		}
	}

	// Near miss: close enough to talk numbers instead of walking.
	nearMissFloor := threshold - prof.NearMissBand
	if nearMissFloor < cfg.Evaluator.NearMissFloor {
		nearMissFloor = cfg.Evaluator.NearMissFloor
	}
	if fit >= nearMissFloor {
		counter := buildCounter(s, offer, threshold)
		s.Mood = s.Mood.StepToward(agents.MoodInterested)
		s.angryStreak = 0
		return Response{
			Outcome:      OutcomeCountered,
			NewMood:      s.Mood,
			Message:      fmt.Sprintf("Close, but %s wants %s a year. Here's what would get it done.", s.Agent.Name, contract.AveragePerYear(counter)),
			CounterOffer: &counter,
		}
	}

	// Insulting offers send volatile agents straight to the boiling point.
	s.Mood = s.Mood.StepToward(agents.MoodAngry)
	if s.Agent.MoodVolatility >= 0.7 && fit < nearMissFloor-0.1 {
		s.Mood = agents.MoodAngry
	}
	s.noteRejection()
	return Response{
		Outcome: OutcomeRejected,
		NewMood: s.Mood,
		Message: fmt.Sprintf("%s laughs it off — %s is worth %s on the open market.", s.Agent.Name, s.Player.Name, s.MarketValue),
	}
}

// acceptThreshold is the fit an offer must clear. Mood, archetype bias,
// guarantee structure, contender pull, and the leverage gap all move it.
func acceptThreshold(cfg config.Evaluator, s *Session, prof agents.Profile, offer contract.Offer, ctx team.Context) float64 {
	t := cfg.BaseThreshold + prof.ThresholdBias

	switch s.Mood {
	case agents.MoodExcited:
		t += cfg.ExcitedAdjust
	case agents.MoodInterested:
		t += cfg.InterestedAdjust
	case agents.MoodAngry:
		t += cfg.AngryAdjust
	}

	// Locked-in money buys a discount from security-minded profiles.
	t -= prof.GuaranteeAffinity * contract.GuaranteedPercentage(offer)

	if ctx.IsContender {
		t -= prof.ContenderDiscount
	}

	t += cfg.LeverageWeight * (s.Leverage.Agent - s.Leverage.User)
	return t
}

// buildCounter proposes the same structure nudged to the agent's number:
// APY at market value times the threshold, years unchanged, guarantees
// raised in proportion to the new total.
func buildCounter(s *Session, offer contract.Offer, threshold float64) contract.Offer {
	targetAPY := contract.Money(float64(s.MarketValue) * threshold)
	targetTotal := targetAPY * contract.Money(offer.Years)

	bonus := offer.SigningBonus
	if bonus > targetTotal {
		bonus = targetTotal
	}
	baseTotal := targetTotal - bonus
	perYear := baseTotal / contract.Money(offer.Years)
	base := make([]contract.Money, offer.Years)
	for i := range base {
		base[i] = perYear
	}
	// Park the rounding remainder in the final year.
	base[offer.Years-1] += baseTotal - perYear*contract.Money(offer.Years)

	oldTotal := contract.TotalValue(offer)
	var guaranteed contract.Money
	if oldTotal > 0 {
		guaranteed = contract.Money(float64(offer.GuaranteedMoney) * float64(targetTotal) / float64(oldTotal))
	} else {
		guaranteed = targetTotal / 2
	}
	if guaranteed > targetTotal {
		guaranteed = targetTotal
	}

	counter, err := contract.NewOffer(offer.Years, base, bonus, guaranteed, offer.VoidYears, offer.OffsetLanguage)
	if err != nil {
		// Counters are built from a validated offer and clamped figures;
		// fall back to echoing the original rather than emitting junk.
		return offer
	}
	return counter
}

func (s *Session) noteRejection() {
	if s.Mood == agents.MoodAngry {
		s.angryStreak++
	} else {
		s.angryStreak = 0
	}
}
