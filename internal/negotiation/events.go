// Special events — fired once per completed evaluation, in a fixed order:
// press leak, phone dead, shadow advisor, lockout. Each gate rolls the
// injected source, so a seeded engine replays the same drama.
package negotiation

import (
	"fmt"
	"log/slog"

	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/entropy"
)

var leakHeadlines = []string{
	"Sources: %s camp 'insulted' by latest offer from the front office",
	"Report: talks between %s and the club have turned sour",
	"League insider: %s being shopped a number well below his %s market price",
	"Front office lowballing %s? Locker room is watching",
}

var shadowAdvisors = []string{
	"Tony Rizzo", "Deacon Hale", "Marv Kessel", "Lonnie Pratt", "Sal DiMarco",
}

// ScheduleEvents runs the post-round event gates against the session. The
// caller invokes it only after a completed evaluation — never during a
// phone-dead window, after acceptance, or on a locked-out session.
func ScheduleEvents(cfg config.Events, s *Session, rng entropy.Source) []Event {
	if s.Terminal() {
		return nil
	}

	var fired []Event
	prof := agents.ProfileFor(s.Agent.Archetype)

	// Press leak: worsening mood plus enough rounds to make a story.
	if s.Round > cfg.PressLeakMinRound {
		p := cfg.PressLeakBase * (0.5 + s.Mood.Worseness())
		if rng.Float() < p {
			tmpl := leakHeadlines[int(rng.Float()*float64(len(leakHeadlines)))%len(leakHeadlines)]
			var headline string
			if countVerbs(tmpl) == 2 {
				headline = fmt.Sprintf(tmpl, s.Player.Name, s.MarketValue)
			} else {
				headline = fmt.Sprintf(tmpl, s.Player.Name)
			}
			s.PressLeaks = append(s.PressLeaks, PressLeak{Round: s.Round, Headline: headline})
			fired = append(fired, Event{Kind: EventPressLeak, Round: s.Round, Detail: headline})
			slog.Debug("press leak", "player", s.Player.Name, "round", s.Round, "headline", headline)
		}
	}

	// Phone dead: an agent pushed to anger twice running goes quiet. Skipped
	// while a shadow approach is pending — the agent is watching how the
	// front office handles it.
	if s.State == StateNormal && s.angryStreak >= cfg.PhoneDeadAfterAngry {
		s.State = StatePhoneDead
		s.PhoneDeadUntil = s.Round + cfg.PhoneDeadCooldown
		s.angryStreak = 0
		detail := fmt.Sprintf("%s stops answering until round %d", s.Agent.Name, s.PhoneDeadUntil)
		fired = append(fired, Event{Kind: EventPhoneDead, Round: s.Round, Detail: detail})
		slog.Info("phone dead", "player", s.Player.Name, "until_round", s.PhoneDeadUntil)
	}

	// Shadow advisor: a back-channel voice finds leverage-rich ears, mostly
	// around Sharks and BrandBuilders.
	if s.State == StateNormal && s.Shadow == nil && s.Leverage.Agent > cfg.ShadowLeverageGate {
		p := cfg.ShadowBase
		if !prof.ShadowProne {
			p *= 0.3
		}
		if rng.Float() < p {
			advisor := shadowAdvisors[int(rng.Float()*float64(len(shadowAdvisors)))%len(shadowAdvisors)]
			demand := scale(s.MarketValue, cfg.ShadowDemandMarkup)
			s.State = StateShadowPending
			s.Shadow = &ShadowEvent{
				AdvisorName: advisor,
				PlayerName:  s.Player.Name,
				Demand:      demand,
				SinceRound:  s.Round,
			}
			detail := fmt.Sprintf("%s approaches on behalf of %s, demanding %s", advisor, s.Player.Name, demand)
			fired = append(fired, Event{Kind: EventShadowApproach, Round: s.Round, Detail: detail})
			slog.Info("shadow advisor", "player", s.Player.Name, "advisor", advisor, "demand", demand.String())
		}
	}

	// Lockout: too many rounds, or a shadow approach left to fester.
	if s.Round > cfg.MaxRounds {
		reason := fmt.Sprintf("talks collapsed after %d rounds", s.Round)
		s.lock(reason)
		fired = append(fired, Event{Kind: EventLockout, Round: s.Round, Detail: reason})
		slog.Info("lockout", "player", s.Player.Name, "reason", reason)
	} else if s.State == StateShadowPending && s.Round-s.Shadow.SinceRound >= cfg.ShadowPatience {
		reason := "off-channel interference went unanswered"
		s.lock(reason)
		fired = append(fired, Event{Kind: EventLockout, Round: s.Round, Detail: reason})
		slog.Info("lockout", "player", s.Player.Name, "reason", reason)
	}

	return fired
}

func scale(m contract.Money, f float64) contract.Money {
	return contract.Money(float64(m) * f)
}

// countVerbs counts the format verbs in a headline template.
func countVerbs(tmpl string) int {
	n := 0
	for i := 0; i < len(tmpl)-1; i++ {
		if tmpl[i] == '%' && tmpl[i+1] != '%' {
			n++
		}
	}
	return n
}
