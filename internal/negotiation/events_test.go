package negotiation

import (
	"strings"
	"testing"

	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/entropy"
	"github.com/talgya/frontoffice/internal/team"
)

// stubSource always rolls the same value, for forcing gates open or shut.
type stubSource struct{ v float64 }

func (s stubSource) Float() float64 { return s.v }

func angrySession(t *testing.T) *Session {
	t.Helper()
	s := sharkSession(t)
	s.Mood = agents.MoodAngry
	s.Round = 5
	return s
}

func TestPressLeakFiresWhenForced(t *testing.T) {
	s := angrySession(t)
	fired := ScheduleEvents(config.Default().Events, s, stubSource{0})
	if len(s.PressLeaks) != 1 {
		t.Fatalf("forced roll should leak, got %d leaks", len(s.PressLeaks))
	}
	found := false
	for _, e := range fired {
		if e.Kind == EventPressLeak {
			found = true
			if !strings.Contains(e.Detail, s.Player.Name) {
				t.Errorf("headline %q does not name the player", e.Detail)
			}
		}
	}
	if !found {
		t.Error("press leak not reported in fired events")
	}
}

func TestPressLeakNeedsRounds(t *testing.T) {
	s := angrySession(t)
	s.Round = 2 // not enough story yet
	ScheduleEvents(config.Default().Events, s, stubSource{0})
	for _, e := range sessionEvents(s) {
		if e == EventPressLeak {
			t.Error("leak fired before the minimum round")
		}
	}
	if len(s.PressLeaks) != 0 {
		t.Errorf("got %d leaks before the minimum round", len(s.PressLeaks))
	}
}

func sessionEvents(s *Session) []EventKind {
	var kinds []EventKind
	if len(s.PressLeaks) > 0 {
		kinds = append(kinds, EventPressLeak)
	}
	if s.State == StatePhoneDead {
		kinds = append(kinds, EventPhoneDead)
	}
	if s.State == StateShadowPending {
		kinds = append(kinds, EventShadowApproach)
	}
	if s.State == StateLockedOut {
		kinds = append(kinds, EventLockout)
	}
	return kinds
}

func TestPhoneDeadAfterConsecutiveAngryRejections(t *testing.T) {
	s := angrySession(t)
	s.angryStreak = 2
	ScheduleEvents(config.Default().Events, s, stubSource{0.99})
	if s.State != StatePhoneDead {
		t.Fatalf("two angry rejections should kill the phone, state = %s", s.State)
	}
	if s.PhoneDeadUntil != s.Round+config.Default().Events.PhoneDeadCooldown {
		t.Errorf("cooldown until round %d, want %d", s.PhoneDeadUntil, s.Round+2)
	}
	if s.angryStreak != 0 {
		t.Error("streak should reset once the phone goes dead")
	}
}

func TestShadowAdvisorNeedsLeverage(t *testing.T) {
	s := angrySession(t)
	s.Leverage.Agent = 0.3
	ScheduleEvents(config.Default().Events, s, stubSource{0})
	if s.Shadow != nil {
		t.Error("shadow advisor approached a low-leverage agent")
	}

	s.Leverage.Agent = 0.8
	ScheduleEvents(config.Default().Events, s, stubSource{0})
	if s.Shadow == nil || s.State != StateShadowPending {
		t.Fatalf("forced roll with high leverage should bring an advisor, state = %s", s.State)
	}
	wantDemand := scale(s.MarketValue, config.Default().Events.ShadowDemandMarkup)
	if s.Shadow.Demand != wantDemand {
		t.Errorf("demand = %s, want %s", s.Shadow.Demand, wantDemand)
	}
}

func TestLockoutAfterRoundCap(t *testing.T) {
	s := angrySession(t)
	s.Round = config.Default().Events.MaxRounds + 1
	fired := ScheduleEvents(config.Default().Events, s, stubSource{0.99})
	if s.State != StateLockedOut {
		t.Fatalf("round cap should lock the session, state = %s", s.State)
	}
	if s.LockoutReason == "" {
		t.Error("lockout recorded no reason")
	}
	hasLockout := false
	for _, e := range fired {
		if e.Kind == EventLockout {
			hasLockout = true
		}
	}
	if !hasLockout {
		t.Error("lockout not reported in fired events")
	}
}

func TestIgnoredShadowTurnsTerminal(t *testing.T) {
	cfg := config.Default().Events
	s := angrySession(t)
	s.State = StateShadowPending
	s.Shadow = &ShadowEvent{AdvisorName: "Tony Rizzo", PlayerName: s.Player.Name, Demand: 23_000_000, SinceRound: s.Round - cfg.ShadowPatience}
	ScheduleEvents(cfg, s, stubSource{0.99})
	if s.State != StateLockedOut {
		t.Fatalf("festering shadow approach should lock the session, state = %s", s.State)
	}
	if s.Shadow != nil || s.PhoneDeadUntil != 0 {
		t.Error("lockout must clear the other sub-states")
	}
}

func TestTerminalSessionsFireNothing(t *testing.T) {
	s := angrySession(t)
	s.State = StateAccepted
	if fired := ScheduleEvents(config.Default().Events, s, stubSource{0}); fired != nil {
		t.Errorf("accepted session fired %v", fired)
	}
}

func TestSeededEventReplay(t *testing.T) {
	cfg := config.Default()
	run := func(seed int64) []Event {
		s := sharkSession(t)
		s.Mood = agents.MoodAngry
		rng := entropy.NewSeeded(seed)
		ctx := team.Context{CapSpace: 40_000_000, PositionDepth: 1} // scarce slot, high agent leverage
		var all []Event
		offer := flatOffer(t, 3, 14_000_000)
		for i := 0; i < 8 && !s.Terminal(); i++ {
			resp := Evaluate(cfg, s, offer, ctx)
			switch resp.Outcome {
			case OutcomeCountered, OutcomeRejected, OutcomeCapInfeasible, OutcomeTooLong:
				all = append(all, ScheduleEvents(cfg.Events, s, rng)...)
			}
		}
		return all
	}

	a := run(42)
	b := run(42)
	if len(a) != len(b) {
		t.Fatalf("replay fired %d events vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("event %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}
