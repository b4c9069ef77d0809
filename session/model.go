package session

import "github.com/zucenko/colormatch/model"

type TurnState int

const (
	TS_IDLE TurnState = iota + 1
	TS_ONE_SELECTED
	TS_RESOLVING
	TS_WON
	TS_LOST
)

// Status is the outcome of the game, derived from the board and attempts.
type Status int

const (
	ST_IN_PROGRESS Status = iota + 1
	ST_WON
	ST_LOST
)

// Event is anything the turn controller reacts to.
type Event interface {
	event()
}

// Click selects the cell at Row, Col.
type Click struct {
	Row, Col int
}

// TimerExpired is delivered by the delay gate once a mismatched pair has
// been shown long enough.
type TimerExpired struct{}

func (Click) event()        {}
func (TimerExpired) event() {}

// Selection holds the cells picked in the current turn.
type Selection struct {
	Cells [2]model.Coord
	Count int
}

// GameSession owns everything one game needs. It is not safe for concurrent
// use; all events must arrive from the same goroutine.
type GameSession struct {
	Board     *model.Board
	Selection Selection
	Attempts  int
	State     TurnState
	Gate      *DelayGate

	// OnGameEnded is called once when the game is won or lost.
	OnGameEnded func(Status)

	version  uint64
	ended    bool
	disposed bool
}
