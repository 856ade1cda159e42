// Bilateral leverage — recomputed from current state every round, never
// path-dependent beyond the round counter and the leak history.
package negotiation

import (
	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/team"
)

// ComputeLeverage derives both sides' power from the session, the offer on
// the table, and the team's current cap picture. Both shares clamp to [0, 1].
func ComputeLeverage(cfg config.Leverage, s *Session, offer contract.Offer, ctx team.Context) Leverage {
	return Leverage{
		Agent: clamp01(agentLeverage(cfg, s, ctx)),
		User:  clamp01(userLeverage(cfg, s, offer, ctx)),
	}
}

// agentLeverage: a price the team can't cover, a thin depth chart, and long
// talks all favor the agent.
func agentLeverage(cfg config.Leverage, s *Session, ctx team.Context) float64 {
	lev := cfg.Base

	// Cap pressure: how much of the player's price the team cannot fit.
	if s.MarketValue > 0 && s.MarketValue > ctx.CapSpace {
		short := float64(s.MarketValue - ctx.CapSpace)
		lev += cfg.CapPressureWeight * clamp01(short/float64(s.MarketValue))
	}

	// Scarcity: a bare slot leaves the team nowhere else to go.
	if ctx.PositionDepth <= cfg.ScarcityDepth {
		depthGap := float64(cfg.ScarcityDepth-ctx.PositionDepth+1) / float64(cfg.ScarcityDepth+1)
		lev += cfg.ScarcityWeight * clamp01(depthGap)
	}

	// Round fatigue, capped — it works both ways, but the clock is the
	// agent's friend first.
	rounds := s.Round
	if rounds > cfg.RoundFatigueCap {
		rounds = cfg.RoundFatigueCap
	}
	lev += cfg.RoundFatigue * float64(rounds)

	return lev
}

// userLeverage: cap headroom, a contending roster, and a bruised public image
// on the other side all favor the team.
func userLeverage(cfg config.Leverage, s *Session, offer contract.Offer, ctx team.Context) float64 {
	lev := cfg.Base

	// Headroom over this offer's first-year charge.
	if s.MarketValue > 0 {
		margin := ctx.CapSpace - contract.CapHitYear1(offer)
		if margin > 0 {
			lev += cfg.CapMarginWeight * clamp01(float64(margin)/float64(s.MarketValue))
		}
	}

	// Players discount money for a ring, moderated by archetype.
	if ctx.IsContender {
		lev += cfg.ContenderBonus * agents.ProfileFor(s.Agent.Archetype).RingRegard
	}

	// Press leaks put the agent's client on the back foot.
	leakEffect := float64(len(s.PressLeaks)) * cfg.PressLeakBonus
	if leakEffect > cfg.PressLeakCap {
		leakEffect = cfg.PressLeakCap
	}
	lev += leakEffect

	// An agent who was reported to the league trusts the room less.
	if s.ReportedShadow {
		lev -= cfg.DistrustPenalty
	}

	return lev
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
