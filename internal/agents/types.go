// Package agents provides the contract-agent model: archetypes, mood, and the
// deterministic per-player agent factory.
package agents

// Archetype is an agent's behavioral profile at the table.
type Archetype uint8

const (
	Shark           Archetype = iota // aggressive, quick to anger, chases peak value
	FamilyFriend                     // patient, trades APY for security
	BrandBuilder                     // moderate, lights up for contenders and guarantees
	SelfRepresented                  // the player himself — literal, unflappable
)

// NumArchetypes is the count of behavioral profiles.
const NumArchetypes = 4

// String returns the archetype's display name.
func (a Archetype) String() string {
	switch a {
	case Shark:
		return "Shark"
	case FamilyFriend:
		return "FamilyFriend"
	case BrandBuilder:
		return "BrandBuilder"
	case SelfRepresented:
		return "SelfRepresented"
	default:
		return "Unknown"
	}
}

// Mood is the agent's disposition toward the talks, ordered worst to best.
type Mood int8

const (
	MoodAngry Mood = iota
	MoodNeutral
	MoodInterested
	MoodExcited
)

// String returns the mood's display name.
func (m Mood) String() string {
	switch m {
	case MoodAngry:
		return "angry"
	case MoodNeutral:
		return "neutral"
	case MoodInterested:
		return "interested"
	case MoodExcited:
		return "excited"
	default:
		return "unknown"
	}
}

// StepToward moves the mood one notch toward target, in either direction.
func (m Mood) StepToward(target Mood) Mood {
	switch {
	case m < target:
		return m + 1
	case m > target:
		return m - 1
	default:
		return m
	}
}

// Worseness maps mood to a 0..1 friction factor used by event gates: the
// angrier the agent, the hotter the room.
func (m Mood) Worseness() float64 {
	switch m {
	case MoodAngry:
		return 1.0
	case MoodNeutral:
		return 0.5
	case MoodInterested:
		return 0.25
	default:
		return 0.0
	}
}

// Agent represents the negotiator across the table. Immutable for the life of
// a session; the factory regenerates an identical agent for the same player.
type Agent struct {
	Name              string    `json:"name"`
	Archetype         Archetype `json:"archetype"`
	Patience          float32   `json:"patience"`            // 0..1, higher tolerates more rounds
	MaxContractLength int       `json:"max_contract_length"` // longest deal the agent will sign
	MoodVolatility    float32   `json:"mood_volatility"`     // 0..1, how hard mood swings
}
