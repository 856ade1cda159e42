// Command frontoffice runs a scripted free-agency window: it opens a
// negotiation for each player on the board, escalates offers until the agent
// signs or walks, and records every round in the ledger.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/talgya/frontoffice/internal/config"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/entropy"
	"github.com/talgya/frontoffice/internal/ledger"
	"github.com/talgya/frontoffice/internal/market"
	"github.com/talgya/frontoffice/internal/negotiation"
	"github.com/talgya/frontoffice/internal/team"
)

func main() {
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Front Office — Free Agency Window")

	seed := int64(42)
	if v := os.Getenv("FRONTOFFICE_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}
	dbPath := os.Getenv("FRONTOFFICE_DB")
	if dbPath == "" {
		dbPath = "data/frontoffice.db"
	}

	// ── Configuration ─────────────────────────────────────────────────
	cfg := config.Default()
	if path := os.Getenv("FRONTOFFICE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			slog.Error("failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
		slog.Info("config loaded", "path", path)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// ── Ledger ────────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := ledger.Open(dbPath)
	if err != nil {
		slog.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("ledger opened", "path", dbPath)

	// ── Team and Market ───────────────────────────────────────────────
	registry := team.NewInMemoryRegistry()
	registry.AddTeam("home", 255_000_000, 187_000_000, true, team.CashFlush)
	registry.SetDepth("home", team.PosQB, 1)
	registry.SetDepth("home", team.PosWR, 2)
	registry.SetDepth("home", team.PosDL, 1)
	registry.SetDepth("home", team.PosCB, 3)

	mkt := market.NewModel(seed)
	week := 1

	// ── Negotiation Engine ────────────────────────────────────────────
	eng := negotiation.NewEngine(cfg, entropy.NewSeeded(seed), mkt)
	eng.SetWeek(week)

	board := []team.Player{
		{ID: "qb-reed", Name: "Marcus Reed", Position: team.PosQB, Age: 29, Overall: 91},
		{ID: "wr-cole", Name: "Jalen Cole", Position: team.PosWR, Age: 26, Overall: 92, Temperament: team.TemperamentVolatile},
		{ID: "dl-okafor", Name: "Sam Okafor", Position: team.PosDL, Age: 27, Overall: 88, Temperament: team.TemperamentLoyal},
		{ID: "cb-vance", Name: "Deion Vance", Position: team.PosCB, Age: 30, Overall: 84, Temperament: team.TemperamentIndependent},
	}

	signed := 0
	for _, p := range board {
		if negotiate(eng, db, registry, p) {
			signed++
		}
	}

	// ── Summary ───────────────────────────────────────────────────────
	signings, err := db.Signings()
	if err != nil {
		slog.Error("failed to read signings", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\nWindow closed: %d of %d targets signed.\n", signed, len(board))
	for _, s := range signings {
		fmt.Printf("  %-14s %d years, %s total (%s guaranteed)\n",
			s.PlayerName, s.Years, s.TotalValue, s.Guaranteed)
	}
	if events, err := db.RecentEvents(5); err == nil && len(events) > 0 {
		fmt.Println("\nAround the league:")
		for _, e := range events {
			fmt.Printf("  [%s] %s\n", e.Kind, e.Detail)
		}
	}
}

// negotiate runs one player's talks to a terminal state. The front office
// opens at 85% of its read on the market and climbs toward any counter.
func negotiate(eng *negotiation.Engine, db *ledger.DB, registry *team.InMemoryRegistry, p team.Player) bool {
	ctx, err := registry.Context("home", p.Position)
	if err != nil {
		slog.Error("no team context", "player", p.Name, "error", err)
		return false
	}

	s := eng.BeginNegotiation(p, ctx)
	apy := scaleMoney(s.MarketValue, 0.85)
	years := 3

	for !s.Terminal() {
		offer, err := buildOffer(years, apy)
		if err != nil {
			slog.Error("bad offer", "player", p.Name, "error", err)
			return false
		}

		resp, err := eng.SubmitOffer(p.ID, offer, ctx)
		if err != nil {
			slog.Error("submit failed", "player", p.Name, "error", err)
			return false
		}
		if err := db.RecordRound(s, offer, resp); err != nil {
			slog.Error("record failed", "player", p.Name, "error", err)
		}

		switch resp.Outcome {
		case negotiation.OutcomeAccepted:
			registry.Commit("home", contract.CapHitYear1(offer))
			if err := db.RecordSigning(s, offer); err != nil {
				slog.Error("signing record failed", "player", p.Name, "error", err)
			}
			eng.CloseSession(p.ID)
			return true
		case negotiation.OutcomeCountered:
			if resp.CounterOffer != nil {
				apy = contract.AveragePerYear(*resp.CounterOffer)
			}
		case negotiation.OutcomeRejected, negotiation.OutcomeCapInfeasible:
			apy = scaleMoney(apy, 1.05)
		case negotiation.OutcomeTooLong:
			years--
		}

		// This front office does not deal with shadow advisors.
		if s.State == negotiation.StateShadowPending {
			eng.RespondToShadowAdvisor(p.ID, negotiation.ShadowReport)
		}
	}

	slog.Info("talks ended without a deal",
		"player", p.Name,
		"state", s.State.String(),
		"reason", s.LockoutReason,
	)
	eng.CloseSession(p.ID)
	return false
}

func buildOffer(years int, perYear contract.Money) (contract.Offer, error) {
	base := make([]contract.Money, years)
	for i := range base {
		base[i] = perYear
	}
	bonus := scaleMoney(perYear, 0.5)
	guaranteed := scaleMoney(perYear, float64(years)*0.45) + bonus
	return contract.NewOffer(years, base, bonus, guaranteed, 0, true)
}

func scaleMoney(m contract.Money, factor float64) contract.Money {
	return contract.Money(float64(m) * factor)
}
