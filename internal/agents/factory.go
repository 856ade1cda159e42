// Agent factory — derives a stable agent for each player. Seeding from the
// player id means the same player meets the same agent every time talks
// reopen within a season.
package agents

import (
	"hash/fnv"
	"math/rand"

	"github.com/talgya/frontoffice/internal/entropy"
	"github.com/talgya/frontoffice/internal/team"
)

// Archetype draw weights for players with no pre-assigned temperament.
// Cumulative over a 0..99 roll.
var archetypeWeights = [NumArchetypes]int{
	Shark:           35,
	FamilyFriend:    65,
	BrandBuilder:    88,
	SelfRepresented: 100,
}

var agentFirstNames = []string{
	"Marcus", "Dana", "Lou", "Priya", "Sol", "Tanya", "Rich", "Elena",
	"Derek", "Moira", "Vince", "Paulette", "Omar", "Gail", "Hector", "June",
}

var agentLastNames = []string{
	"Calloway", "Briggs", "Okafor", "Stein", "Marchetti", "Vaughn", "Ruiz",
	"Pemberton", "Kessler", "Duval", "Ashford", "Ngata", "Wexler", "Crane",
}

// ForPlayer derives the player's agent. Deterministic: identical players
// yield identical agents, including the jittered parameters.
func ForPlayer(p team.Player) Agent {
	seed := playerSeed(p.ID)
	rng := rand.New(rand.NewSource(seed))

	arch := archetypeFromTemperament(p.Temperament)
	roll := rng.Intn(100) // always consume the roll so later jitter is stable
	if arch == nil {
		for a := Shark; a < NumArchetypes; a++ {
			if roll < archetypeWeights[a] {
				arch = &a
				break
			}
		}
	}

	prof := ProfileFor(*arch)

	// Small per-player jitter off the archetype base, clamped to sane ranges.
	patience := clamp01(prof.Patience + (rng.Float32()-0.5)*0.2)
	volatility := clamp01(prof.MoodVolatility + (rng.Float32()-0.5)*0.2)
	maxLen := prof.MaxContractLength + rng.Intn(3) - 1
	if maxLen < 1 {
		maxLen = 1
	}

	name := p.Name // self-represented players speak for themselves
	if *arch != SelfRepresented {
		name = agentFirstNames[rng.Intn(len(agentFirstNames))] + " " +
			agentLastNames[rng.Intn(len(agentLastNames))]
	}

	return Agent{
		Name:              name,
		Archetype:         *arch,
		Patience:          patience,
		MaxContractLength: maxLen,
		MoodVolatility:    volatility,
	}
}

// PlayerSeed exposes the identity-derived seed so sibling systems (market
// heat, event rolls) can draw per-player streams from one base seed.
func PlayerSeed(playerID string) int64 {
	return playerSeed(playerID)
}

func playerSeed(playerID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(playerID))
	return entropy.Mix(0x5eed, h.Sum64())
}

func archetypeFromTemperament(t team.Temperament) *Archetype {
	var a Archetype
	switch t {
	case team.TemperamentVolatile:
		a = Shark
	case team.TemperamentLoyal:
		a = FamilyFriend
	case team.TemperamentMarketable:
		a = BrandBuilder
	case team.TemperamentIndependent:
		a = SelfRepresented
	default:
		return nil
	}
	return &a
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
