package team

import (
	"fmt"
	"sync"

	"github.com/talgya/frontoffice/internal/contract"
)

// Registry is the read side of the roster/cap system. The negotiation core
// treats it as an external collaborator and never writes through it.
type Registry interface {
	CapSpace(teamID string) (contract.Money, error)
	CapHit(teamID string) (contract.Money, error)
	PositionDepth(teamID string, pos Position) (int, error)
	Context(teamID string, pos Position) (Context, error)
}

// InMemoryRegistry is a Registry backed by maps, used by the demo binary and
// tests. The real franchise sim supplies its own implementation.
type InMemoryRegistry struct {
	mu    sync.RWMutex
	teams map[string]*franchise
}

type franchise struct {
	capLimit    contract.Money
	committed   contract.Money
	roster      map[Position]int
	isContender bool
	cash        CashReserveTier
}

// NewInMemoryRegistry creates an empty registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{teams: make(map[string]*franchise)}
}

// AddTeam registers a franchise with its cap limit and current commitments.
func (r *InMemoryRegistry) AddTeam(teamID string, capLimit, committed contract.Money, contender bool, cash CashReserveTier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[teamID] = &franchise{
		capLimit:    capLimit,
		committed:   committed,
		roster:      make(map[Position]int),
		isContender: contender,
		cash:        cash,
	}
}

// SetDepth records how many players a team carries at a position.
func (r *InMemoryRegistry) SetDepth(teamID string, pos Position, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.teams[teamID]; ok {
		f.roster[pos] = count
	}
}

// Commit adds a cap charge to a team's books, e.g. after a signing.
func (r *InMemoryRegistry) Commit(teamID string, hit contract.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.teams[teamID]; ok {
		f.committed += hit
	}
}

func (r *InMemoryRegistry) get(teamID string) (*franchise, error) {
	f, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %q not found", teamID)
	}
	return f, nil
}

// CapSpace returns cap limit minus commitments. Can go negative for teams
// over the cap.
func (r *InMemoryRegistry) CapSpace(teamID string) (contract.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, err := r.get(teamID)
	if err != nil {
		return 0, err
	}
	return f.capLimit - f.committed, nil
}

// CapHit returns a team's total committed cap charges.
func (r *InMemoryRegistry) CapHit(teamID string) (contract.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, err := r.get(teamID)
	if err != nil {
		return 0, err
	}
	return f.committed, nil
}

// PositionDepth returns the rostered count at a position.
func (r *InMemoryRegistry) PositionDepth(teamID string, pos Position) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, err := r.get(teamID)
	if err != nil {
		return 0, err
	}
	return f.roster[pos], nil
}

// Context assembles the negotiation-round input for a team and position.
func (r *InMemoryRegistry) Context(teamID string, pos Position) (Context, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, err := r.get(teamID)
	if err != nil {
		return Context{}, err
	}
	return Context{
		CapSpace:      f.capLimit - f.committed,
		PositionDepth: f.roster[pos],
		IsContender:   f.isContender,
		CashReserves:  f.cash,
	}, nil
}
