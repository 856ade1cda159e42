package negotiation

import "errors"

// ErrSessionNotFound means no open negotiation exists for the player. Domain
// outcomes (rejection, lockout, cap infeasibility) are Response values, never
// errors; only structural misuse surfaces this way.
var ErrSessionNotFound = errors.New("no active negotiation session")
