package contract

import (
	"errors"
	"math/rand"
	"testing"
)

func threeByNine() Offer {
	return Offer{
		ID:                "test-offer",
		Years:             3,
		BaseSalaryPerYear: []Money{9_000_000, 9_000_000, 9_000_000},
		SigningBonus:      6_000_000,
		GuaranteedMoney:   15_000_000,
	}
}

func TestCapHitYear1(t *testing.T) {
	o := threeByNine()
	if got := CapHitYear1(o); got != 11_000_000 {
		t.Errorf("CapHitYear1 = %s, want $11,000,000", got)
	}
}

func TestCapHitYear1VoidYearProration(t *testing.T) {
	o := threeByNine()
	o.VoidYears = 1
	// 6M bonus over 4 seasons instead of 3.
	if got := CapHitYear1(o); got != 10_500_000 {
		t.Errorf("CapHitYear1 with void year = %s, want $10,500,000", got)
	}
}

func TestAveragePerYearRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		years := 1 + rng.Intn(7)
		base := make([]Money, years)
		sum := Money(0)
		for y := range base {
			base[y] = Money(rng.Int63n(30_000_000))
			sum += base[y]
		}
		bonus := Money(rng.Int63n(20_000_000))
		o := Offer{ID: "gen", Years: years, BaseSalaryPerYear: base, SigningBonus: bonus}
		want := (sum + bonus) / Money(years)
		if got := AveragePerYear(o); got != want {
			t.Fatalf("offer %d: AveragePerYear = %d, want %d", i, got, want)
		}
	}
}

func TestGuaranteedPercentageBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		years := 1 + rng.Intn(6)
		base := make([]Money, years)
		for y := range base {
			base[y] = Money(rng.Int63n(25_000_000))
		}
		o := Offer{ID: "gen", Years: years, BaseSalaryPerYear: base, SigningBonus: Money(rng.Int63n(15_000_000))}
		o.GuaranteedMoney = Money(rng.Int63n(int64(TotalValue(o)) + 1))
		pct := GuaranteedPercentage(o)
		if pct < 0 || pct > 1 {
			t.Fatalf("offer %d: GuaranteedPercentage = %f out of [0,1]", i, pct)
		}
	}
}

func TestGuaranteedPercentageZeroValue(t *testing.T) {
	o := Offer{ID: "zero", Years: 1, BaseSalaryPerYear: []Money{0}}
	if pct := GuaranteedPercentage(o); pct != 0 {
		t.Errorf("zero-value deal reports %f guaranteed", pct)
	}
}

func TestDeadCapOnRelease(t *testing.T) {
	o := threeByNine() // 15M guaranteed: 6M bonus + 9M year-one base
	tests := []struct {
		elapsed int
		want    Money
	}{
		// All 6M of proration plus the 9M guaranteed base.
		{0, 6_000_000 + 9_000_000},
		// Year-one base earned; two proration years left.
		{1, 4_000_000},
		{2, 2_000_000},
		{3, 0},
		// Past the deal — nothing left to accelerate.
		{5, 0},
	}
	for _, tc := range tests {
		if got := DeadCapOnRelease(o, tc.elapsed); got != tc.want {
			t.Errorf("DeadCapOnRelease(elapsed=%d) = %s, want %s", tc.elapsed, got, tc.want)
		}
	}
}

func TestRestructureProration(t *testing.T) {
	o := threeByNine()
	// Convert 6M after year one: spreads over the 2 remaining seasons.
	if got := RestructureProration(o, 6_000_000, 1); got != 3_000_000 {
		t.Errorf("RestructureProration = %s, want $3,000,000", got)
	}
	o.VoidYears = 2
	if got := RestructureProration(o, 8_000_000, 1); got != 2_000_000 {
		t.Errorf("RestructureProration with void years = %s, want $2,000,000", got)
	}
	if got := RestructureProration(o, 0, 1); got != 0 {
		t.Errorf("converting nothing costs %s", got)
	}
}

func TestValidateRejectsMalformedOffers(t *testing.T) {
	tests := []struct {
		name string
		o    Offer
	}{
		{"zero years", Offer{Years: 0}},
		{"negative years", Offer{Years: -2}},
		{"salary length mismatch", Offer{Years: 3, BaseSalaryPerYear: []Money{1, 2}}},
		{"negative void years", Offer{Years: 1, BaseSalaryPerYear: []Money{1}, VoidYears: -1}},
		{"negative salary", Offer{Years: 1, BaseSalaryPerYear: []Money{-5}}},
		{"guarantee exceeds total", Offer{
			Years:             2,
			BaseSalaryPerYear: []Money{1_000_000, 1_000_000},
			GuaranteedMoney:   5_000_000,
		}},
	}
	for _, tc := range tests {
		if err := tc.o.Validate(); !errors.Is(err, ErrInvalidOffer) {
			t.Errorf("%s: Validate = %v, want ErrInvalidOffer", tc.name, err)
		}
	}
}

func TestNewOfferAssignsID(t *testing.T) {
	a, err := NewOffer(2, []Money{5_000_000, 5_000_000}, 2_000_000, 7_000_000, 0, false)
	if err != nil {
		t.Fatalf("NewOffer: %v", err)
	}
	b, err := NewOffer(2, []Money{5_000_000, 5_000_000}, 2_000_000, 7_000_000, 0, false)
	if err != nil {
		t.Fatalf("NewOffer: %v", err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("offer ids not unique: %q vs %q", a.ID, b.ID)
	}
}

func TestMoneyString(t *testing.T) {
	if s := Money(11_000_000).String(); s != "$11,000,000" {
		t.Errorf("Money.String = %q", s)
	}
	if s := Money(-250_000).String(); s != "-$250,000" {
		t.Errorf("negative Money.String = %q", s)
	}
}
