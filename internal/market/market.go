// Package market prices free agents: a positional ceiling scaled by rating
// and age, warped by a league-wide heat field so the same player is worth a
// little more in a hot week than a cold one.
package market

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/team"
)

// positionCeiling is the market value of a 99-overall player at his peak, by
// position. Quarterbacks bend the whole cap; kickers do not.
var positionCeiling = map[team.Position]contract.Money{
	team.PosQB: 55_000_000,
	team.PosWR: 34_000_000,
	team.PosDL: 30_000_000,
	team.PosOL: 26_000_000,
	team.PosCB: 24_000_000,
	team.PosLB: 21_000_000,
	team.PosTE: 18_000_000,
	team.PosS:  18_000_000,
	team.PosRB: 16_000_000,
	team.PosK:  6_500_000,
}

const defaultCeiling = contract.Money(15_000_000)

// Model prices players against a league heat field. Heat is deterministic in
// (seed, week): replaying a season reprices identically.
type Model struct {
	noise opensimplex.Noise
}

// NewModel creates a market model for a league seed.
func NewModel(seed int64) *Model {
	return &Model{noise: opensimplex.NewNormalized(seed)}
}

// BaseValue prices a player from position, rating, and age alone.
func BaseValue(p team.Player) contract.Money {
	ceiling, ok := positionCeiling[p.Position]
	if !ok {
		ceiling = defaultCeiling
	}
	v := float64(ceiling) * ratingCurve(p.Overall) * ageCurve(p)
	if v < 1_000_000 {
		v = 1_000_000 // league minimum territory
	}
	return contract.Money(v)
}

// Value prices a player in a given league week, base value warped by the
// positional heat lane for that week.
func (m *Model) Value(p team.Player, week int) contract.Money {
	base := float64(BaseValue(p))
	return contract.Money(base * m.Heat(p.Position, week))
}

// Heat samples the league heat field for a position lane in a week, in
// [0.90, 1.15]. Values drift smoothly week over week.
func (m *Model) Heat(pos team.Position, week int) float64 {
	n := m.noise.Eval2(float64(week)*0.15, positionLane(pos))
	return 0.90 + n*0.25
}

// ratingCurve maps a 0–99 overall onto 0..1 of the positional ceiling.
// Convex: stars earn disproportionately, depth pieces cluster near the floor.
func ratingCurve(overall int) float64 {
	if overall <= 40 {
		return 0.02
	}
	if overall > 99 {
		overall = 99
	}
	return math.Pow(float64(overall-40)/59.0, 2.2)
}

// ageCurve discounts for age: flat through the prime, then a compounding
// decline. Running backs fall off harder and sooner.
func ageCurve(p team.Player) float64 {
	peakEnd := 28
	decline := 0.94
	if p.Position == team.PosRB {
		peakEnd = 26
		decline = 0.90
	}
	switch {
	case p.Age <= 22:
		return 0.95 // unproven discount
	case p.Age <= peakEnd:
		return 1.0
	default:
		return math.Pow(decline, float64(p.Age-peakEnd))
	}
}

func positionLane(pos team.Position) float64 {
	// Stable per-position row in the noise field.
	lane := 0.0
	for _, c := range string(pos) {
		lane += float64(c)
	}
	return lane * 0.37
}
