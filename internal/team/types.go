// Package team provides the player model and the read-only team registry the
// negotiation core consults for cap space and roster depth.
package team

import "github.com/talgya/frontoffice/internal/contract"

// Position is a roster slot group.
type Position string

const (
	PosQB   Position = "QB"
	PosRB   Position = "RB"
	PosWR   Position = "WR"
	PosTE   Position = "TE"
	PosOL   Position = "OL"
	PosDL   Position = "DL"
	PosLB   Position = "LB"
	PosCB   Position = "CB"
	PosS    Position = "S"
	PosK    Position = "K"
)

// Temperament is a pre-assigned personality trait on a player. Most players
// carry none and get their agent's archetype from their identity hash instead.
type Temperament uint8

const (
	TemperamentNone        Temperament = iota
	TemperamentVolatile                // demands top dollar, burns bridges
	TemperamentLoyal                   // values security and familiarity
	TemperamentMarketable              // chases spotlight and contenders
	TemperamentIndependent             // negotiates his own deals
)

// Player is the simulated athlete on the other side of the table.
type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Position    Position    `json:"position"`
	Age         int         `json:"age"`
	Overall     int         `json:"overall"` // 0–99 rating
	Temperament Temperament `json:"temperament,omitempty"`
}

// CashReserveTier buckets a franchise's liquid cash. The negotiation core
// only reasons about cap space; the tier is carried through for the finance
// collaborator's affordability gating.
type CashReserveTier uint8

const (
	CashStrapped CashReserveTier = iota
	CashStable
	CashFlush
)

// Context is the team-side input to a negotiation round, supplied fresh by
// the caller on every call. The engine never caches it.
type Context struct {
	CapSpace      contract.Money  `json:"cap_space"`
	PositionDepth int             `json:"position_depth"` // rostered players at the slot
	IsContender   bool            `json:"is_contender"`
	CashReserves  CashReserveTier `json:"cash_reserves"`
}
