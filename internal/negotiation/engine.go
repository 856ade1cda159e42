// The negotiation engine — owns the session registry and sequences the
// leverage model, offer evaluator, and event scheduler on every call.
package negotiation

import (
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/entropy"
	"github.com/talgya/frontoffice/internal/market"
	"github.com/talgya/frontoffice/internal/team"
)

// ShadowAction is the front office's answer to a shadow advisor.
type ShadowAction uint8

const (
	// ShadowEngage plays along: the pending event clears, but the advisor's
	// number becomes the player's effective asking price.
	ShadowEngage ShadowAction = iota

	// ShadowReport turns the advisor in: the event clears and the agent
	// respects the integrity, but trusts the room a little less.
	ShadowReport
)

// Engine is constructed with its collaborators injected — no ambient game
// state. One engine serves a whole league; each player holds at most one
// session at a time.
type Engine struct {
	cfg      config.Config
	rng      entropy.Source
	market   *market.Model
	week     int
	sessions *gocache.Cache // player id → *Session, TTL = negotiation window
}

// NewEngine wires an engine. A nil rng falls back to crypto randomness; a nil
// market model prices players at their base value.
func NewEngine(cfg config.Config, rng entropy.Source, mkt *market.Model) *Engine {
	if rng == nil {
		rng = entropy.Crypto{}
	}
	window := time.Duration(cfg.WindowHours) * time.Hour
	return &Engine{
		cfg:      cfg,
		rng:      rng,
		market:   mkt,
		sessions: gocache.New(window, window/2),
	}
}

// SetWeek advances the league week used for market pricing of new sessions.
func (e *Engine) SetWeek(week int) {
	e.week = week
}

// BeginNegotiation opens a session for the player, or returns the existing
// one untouched — re-entrant calls never reset mood, leverage, or history.
func (e *Engine) BeginNegotiation(p team.Player, ctx team.Context) *Session {
	if s, ok := e.GetSession(p.ID); ok {
		return s
	}

	agent := agents.ForPlayer(p)
	mv := market.BaseValue(p)
	if e.market != nil {
		mv = e.market.Value(p, e.week)
	}

	mood := agents.MoodNeutral
	// BrandBuilders walk into a contender's building already smiling.
	if ctx.IsContender && agent.Archetype == agents.BrandBuilder {
		mood = agents.MoodInterested
	}

	s := &Session{
		Player:      p,
		Agent:       agent,
		Mood:        mood,
		MarketValue: mv,
		Round:       1,
		State:       StateNormal,
	}
	s.Leverage = ComputeLeverage(e.cfg.Leverage, s, contract.Offer{Years: 1, BaseSalaryPerYear: []contract.Money{0}}, ctx)

	e.sessions.SetDefault(p.ID, s)
	slog.Info("negotiation opened",
		"player", p.Name,
		"agent", agent.Name,
		"archetype", agent.Archetype.String(),
		"market_value", mv.String(),
	)
	return s
}

// SubmitOffer evaluates one offer against the player's open session and runs
// the post-round event gates. The session either absorbs the whole round or,
// on a structural error, nothing at all.
func (e *Engine) SubmitOffer(playerID string, offer contract.Offer, ctx team.Context) (Response, error) {
	s, ok := e.GetSession(playerID)
	if !ok {
		return Response{}, fmt.Errorf("%w: player %s", ErrSessionNotFound, playerID)
	}
	if err := offer.Validate(); err != nil {
		return Response{}, err
	}

	resp := Evaluate(e.cfg, s, offer, ctx)

	// Event gates run only after a round that actually happened.
	switch resp.Outcome {
	case OutcomeCountered, OutcomeRejected, OutcomeCapInfeasible, OutcomeTooLong:
		resp.Events = ScheduleEvents(e.cfg.Events, s, e.rng)
	}

	if resp.Accepted {
		slog.Info("offer accepted",
			"player", s.Player.Name,
			"years", offer.Years,
			"apy", contract.AveragePerYear(offer).String(),
			"round", s.Round,
		)
	}
	return resp, nil
}

// RespondToShadowAdvisor resolves a pending shadow approach. A no-op when
// nothing is pending.
func (e *Engine) RespondToShadowAdvisor(playerID string, action ShadowAction) {
	s, ok := e.GetSession(playerID)
	if !ok || s.State != StateShadowPending || s.Shadow == nil {
		return
	}

	shadow := *s.Shadow
	s.Shadow = nil
	s.State = StateNormal

	switch action {
	case ShadowEngage:
		if shadow.Demand > s.MarketValue {
			s.MarketValue = shadow.Demand
		}
		slog.Info("shadow advisor engaged",
			"player", s.Player.Name,
			"advisor", shadow.AdvisorName,
			"new_market_value", s.MarketValue.String(),
		)
	case ShadowReport:
		s.Mood = s.Mood.StepToward(agents.MoodExcited)
		s.ReportedShadow = true
		slog.Info("shadow advisor reported",
			"player", s.Player.Name,
			"advisor", shadow.AdvisorName,
			"new_mood", s.Mood.String(),
		)
	}
}

// GetSession returns the player's open session, if any.
func (e *Engine) GetSession(playerID string) (*Session, bool) {
	v, ok := e.sessions.Get(playerID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// CloseSession removes a session — after the roster side commits a signing,
// or when the front office walks away.
func (e *Engine) CloseSession(playerID string) {
	e.sessions.Delete(playerID)
}

// OpenSessions reports how many negotiations are live.
func (e *Engine) OpenSessions() int {
	return e.sessions.ItemCount()
}
