// Archetype behavior profiles — base values each agent is jittered from, and
// the evaluator biases that give the four profiles distinct table manners.
package agents

// Profile defines an archetype's base negotiating parameters.
type Profile struct {
	// Patience is the base tolerance for drawn-out talks.
	Patience float32

	// MaxContractLength is the longest deal the archetype entertains.
	MaxContractLength int

	// MoodVolatility scales how hard rejections swing mood.
	MoodVolatility float32

	// ThresholdBias shifts the acceptance threshold: positive demands more.
	ThresholdBias float64

	// GuaranteeAffinity lowers the threshold as guaranteed percentage rises
	// (security-minded profiles sign for structure, not peak APY).
	GuaranteeAffinity float64

	// ContenderDiscount lowers the threshold when the team is a contender.
	ContenderDiscount float64

	// NearMissBand is how far below the threshold still draws a counter
	// instead of a rejection.
	NearMissBand float64

	// RingRegard scales how much a contender's pull strengthens the team's
	// leverage with this archetype.
	RingRegard float64

	// ShadowProne marks archetypes that attract off-channel advisors.
	ShadowProne bool
}

// profiles maps each archetype to its base behavior.
var profiles = [NumArchetypes]Profile{
	Shark: {
		Patience:          0.25,
		MaxContractLength: 10,
		MoodVolatility:    0.85,
		ThresholdBias:     0.02, // rarely signs below market
		GuaranteeAffinity: 0.01,
		ContenderDiscount: 0.01,
		NearMissBand:      0.14,
		RingRegard:        0.5,
		ShadowProne:       true,
	},
	FamilyFriend: {
		Patience:          0.85,
		MaxContractLength: 6,
		MoodVolatility:    0.25,
		ThresholdBias:     -0.02,
		GuaranteeAffinity: 0.08, // strong pull toward locked-in money
		ContenderDiscount: 0.01,
		NearMissBand:      0.16,
		RingRegard:        1.0,
	},
	BrandBuilder: {
		Patience:          0.55,
		MaxContractLength: 7,
		MoodVolatility:    0.55,
		ThresholdBias:     0.0,
		GuaranteeAffinity: 0.04, // big guarantees read as marketability
		ContenderDiscount: 0.04, // rings sell sneakers
		NearMissBand:      0.15,
		RingRegard:        1.5,
		ShadowProne:       true,
	},
	SelfRepresented: {
		Patience:          0.95,
		MaxContractLength: 5,
		MoodVolatility:    0.15,
		ThresholdBias:     0.01,
		GuaranteeAffinity: 0.02,
		ContenderDiscount: 0.01,
		NearMissBand:      0.08, // literal evaluator, narrow counter band
		RingRegard:        0.75,
	},
}

// ProfileFor returns the base profile for an archetype.
func ProfileFor(a Archetype) Profile {
	if int(a) >= NumArchetypes {
		return profiles[SelfRepresented]
	}
	return profiles[a]
}
