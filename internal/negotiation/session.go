// Package negotiation implements the per-player contract-talks state machine:
// leverage, offer evaluation, special events, and the session registry.
package negotiation

import (
	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/team"
)

// SessionState is the session's position in the talks lifecycle. Normal,
// PhoneDead, and ShadowPending flow back into each other; Accepted and
// LockedOut are terminal.
type SessionState uint8

const (
	StateNormal SessionState = iota
	StatePhoneDead
	StateShadowPending
	StateAccepted
	StateLockedOut
)

// String returns the state's display name.
func (s SessionState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePhoneDead:
		return "phone_dead"
	case StateShadowPending:
		return "shadow_pending"
	case StateAccepted:
		return "accepted"
	case StateLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

// Leverage is each side's negotiating power in [0, 1]. The shares are
// computed from different factors and do not sum to one.
type Leverage struct {
	User  float64 `json:"user"`
	Agent float64 `json:"agent"`
}

// PressLeak is a story planted during the talks.
type PressLeak struct {
	Round    int    `json:"round"`
	Headline string `json:"headline"`
}

// ShadowEvent is an unsanctioned advisor's approach, waiting on the user's
// response.
type ShadowEvent struct {
	AdvisorName string         `json:"advisor_name"`
	PlayerName  string         `json:"player_name"`
	Demand      contract.Money `json:"demand"`
	SinceRound  int            `json:"since_round"`
}

// Session is one player's open negotiation. Created once per negotiation
// window and mutated in place by every submitted offer.
type Session struct {
	Player      team.Player    `json:"player"`
	Agent       agents.Agent   `json:"agent"`
	Mood        agents.Mood    `json:"mood"`
	MarketValue contract.Money `json:"market_value"`
	Round       int            `json:"round"` // 1-based, advances per offer
	Leverage    Leverage       `json:"leverage"`

	State          SessionState `json:"state"`
	LockoutReason  string       `json:"lockout_reason,omitempty"`  // StateLockedOut only
	PhoneDeadUntil int          `json:"phone_dead_until,omitempty"` // StatePhoneDead only
	Shadow         *ShadowEvent `json:"shadow,omitempty"`           // StateShadowPending only

	PressLeaks     []PressLeak `json:"press_leaks,omitempty"`
	ReportedShadow bool        `json:"reported_shadow,omitempty"` // lingering agent distrust

	// Consecutive angry rejections, feeding the phone-dead gate.
	angryStreak int
}

// Terminal reports whether the session can take no further offers.
func (s *Session) Terminal() bool {
	return s.State == StateAccepted || s.State == StateLockedOut
}

// lock moves the session to its absorbing state, clearing sub-state fields
// so a locked-out session cannot also be phone-dead or shadow-pending.
func (s *Session) lock(reason string) {
	s.State = StateLockedOut
	s.LockoutReason = reason
	s.PhoneDeadUntil = 0
	s.Shadow = nil
}

// Outcome classifies a negotiation response.
type Outcome uint8

const (
	OutcomeAccepted Outcome = iota
	OutcomeCountered
	OutcomeRejected
	OutcomeCapInfeasible // the offer doesn't fit under the team's cap
	OutcomeTooLong       // more years than the agent will entertain
	OutcomePhoneDead
	OutcomeLockedOut
)

// String returns the outcome's display name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeCountered:
		return "countered"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCapInfeasible:
		return "cap_infeasible"
	case OutcomeTooLong:
		return "too_long"
	case OutcomePhoneDead:
		return "phone_dead"
	case OutcomeLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

// Response is the agent's answer to one offer. A pure output value; the
// session itself carries the durable state.
type Response struct {
	Accepted     bool            `json:"accepted"`
	Outcome      Outcome         `json:"outcome"`
	NewMood      agents.Mood     `json:"new_mood"`
	Message      string          `json:"message"`
	CounterOffer *contract.Offer `json:"counter_offer,omitempty"`

	// Events fired by the scheduler after this round, for the caller's log.
	Events []Event `json:"events,omitempty"`
}

// EventKind tags a special event fired after a round.
type EventKind uint8

const (
	EventPressLeak EventKind = iota
	EventPhoneDead
	EventShadowApproach
	EventLockout
)

// String returns the event kind's display name.
func (k EventKind) String() string {
	switch k {
	case EventPressLeak:
		return "press_leak"
	case EventPhoneDead:
		return "phone_dead"
	case EventShadowApproach:
		return "shadow_approach"
	case EventLockout:
		return "lockout"
	default:
		return "unknown"
	}
}

// Event is a special occurrence in the talks.
type Event struct {
	Kind   EventKind `json:"kind"`
	Round  int       `json:"round"`
	Detail string    `json:"detail"`
}
