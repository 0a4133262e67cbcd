package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateOpen     State = "OPEN"
	StateExtended State = "EXTENDED"
	StateClosed   State = "CLOSED"
	StatePickedUp State = "PICKED_UP"
)

// validTransitions is the full lifecycle graph. PICKED_UP is terminal;
// a state never appears in its own allowed set, so self-transitions are
// rejected like any other illegal edge.
var validTransitions = map[State][]State{
	StateOpen:     {StateExtended, StateClosed},
	StateExtended: {StateOpen, StateClosed},
	StateClosed:   {StatePickedUp},
	StatePickedUp: {},
}

func (s State) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether the edge from s to next is legal.
func (s State) CanTransition(next State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID          string
	WorkspaceID string
	CustomerID  string
	JobNumber   int
	Title       string
	State       State
	DueDate     time.Time
	ExtendedEta *time.Time
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for display
	CustomerName  string
	CustomerPhone string
}

// StateLog is one immutable audit row, appended exactly once per
// successful transition.
type StateLog struct {
	ID          string
	OrderID     string
	FromState   State
	ToState     State
	ChangedBy   string
	Notes       *string
	ExtendedEta *time.Time
	CreatedAt   time.Time

	// Joined for display
	UserName  string
	UserEmail string
}
