package ledger

import (
	"path/filepath"
	"testing"

	"github.com/talgya/frontoffice/internal/agents"
	"github.com/talgya/frontoffice/internal/contract"
	"github.com/talgya/frontoffice/internal/negotiation"
	"github.com/talgya/frontoffice/internal/team"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "frontoffice.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testSession() *negotiation.Session {
	return &negotiation.Session{
		Player:      team.Player{ID: "qb-1", Name: "Marcus Reed", Position: team.PosQB, Age: 28, Overall: 90},
		Agent:       agents.Agent{Name: "Dana Cruz", Archetype: agents.Shark},
		Mood:        agents.MoodNeutral,
		MarketValue: 45_000_000,
		Round:       3,
		Leverage:    negotiation.Leverage{User: 0.4, Agent: 0.55},
	}
}

func testOffer(t *testing.T) contract.Offer {
	t.Helper()
	o, err := contract.NewOffer(4,
		[]contract.Money{38_000_000, 40_000_000, 42_000_000, 44_000_000},
		20_000_000, 90_000_000, 0, false)
	if err != nil {
		t.Fatalf("NewOffer: %v", err)
	}
	return o
}

func TestRecordRoundAndHistory(t *testing.T) {
	db := openTestDB(t)
	s := testSession()
	offer := testOffer(t)

	resp := negotiation.Response{
		Outcome: negotiation.OutcomeCountered,
		NewMood: agents.MoodInterested,
		Events: []negotiation.Event{
			{Kind: negotiation.EventPressLeak, Round: 3, Detail: "sources say talks have stalled"},
		},
	}
	if err := db.RecordRound(s, offer, resp); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}

	s.Round = 4
	resp.Outcome = negotiation.OutcomeAccepted
	resp.Events = nil
	if err := db.RecordRound(s, offer, resp); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}

	rounds, err := db.History("qb-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}
	if rounds[0].Round != 3 || rounds[1].Round != 4 {
		t.Errorf("rounds out of order: %d then %d", rounds[0].Round, rounds[1].Round)
	}
	if rounds[0].Outcome != "countered" {
		t.Errorf("outcome = %q", rounds[0].Outcome)
	}
	if rounds[0].TotalValue != contract.TotalValue(offer) {
		t.Errorf("total value = %s, want %s", rounds[0].TotalValue, contract.TotalValue(offer))
	}
	if rounds[0].AgentLeverage != 0.55 {
		t.Errorf("agent leverage = %v", rounds[0].AgentLeverage)
	}
}

func TestRecentEvents(t *testing.T) {
	db := openTestDB(t)
	s := testSession()
	offer := testOffer(t)

	for i := 0; i < 3; i++ {
		resp := negotiation.Response{
			Outcome: negotiation.OutcomeRejected,
			NewMood: agents.MoodAngry,
			Events: []negotiation.Event{
				{Kind: negotiation.EventPressLeak, Round: s.Round, Detail: "leak"},
			},
		}
		if err := db.RecordRound(s, offer, resp); err != nil {
			t.Fatalf("RecordRound: %v", err)
		}
		s.Round++
	}

	events, err := db.RecentEvents(2)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Round <= events[1].Round {
		t.Error("recent events should come newest first")
	}
}

func TestRecordSigningUpsert(t *testing.T) {
	db := openTestDB(t)
	s := testSession()
	offer := testOffer(t)

	if err := db.RecordSigning(s, offer); err != nil {
		t.Fatalf("RecordSigning: %v", err)
	}
	// A re-signed deal replaces the old row.
	if err := db.RecordSigning(s, offer); err != nil {
		t.Fatalf("RecordSigning again: %v", err)
	}

	signings, err := db.Signings()
	if err != nil {
		t.Fatalf("Signings: %v", err)
	}
	if len(signings) != 1 {
		t.Fatalf("got %d signings, want 1", len(signings))
	}
	got := signings[0]
	if got.PlayerName != "Marcus Reed" || got.Years != 4 || got.SignedRound != 3 {
		t.Errorf("unexpected signing row: %+v", got)
	}
	if got.Guaranteed != 90_000_000 {
		t.Errorf("guaranteed = %s", got.Guaranteed)
	}
}
