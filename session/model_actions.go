package session

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/colormatch/model"
)

func NewGameSession(board *model.Board, attempts int, delay time.Duration) *GameSession {
	gs := &GameSession{
		Board:    board,
		Attempts: attempts,
		State:    TS_IDLE,
	}
	gs.Gate = NewDelayGate(delay, func() {
		_ = gs.Handle(TimerExpired{})
	})
	return gs
}

// NewRandomGameSession deals a fresh ROWS x COLUMNS board.
func NewRandomGameSession(rnd *rand.Rand, delay time.Duration) (*GameSession, error) {
	board, err := model.NewBoard(ROWS, COLUMNS, rnd)
	if err != nil {
		return nil, err
	}
	return NewGameSession(board, ATTEMPTS, delay), nil
}

// Handle applies one event. Clicks that arrive while a mismatch is still
// shown or after the game ended are dropped without error.
func (gs *GameSession) Handle(e Event) error {
	if gs.disposed {
		return nil
	}
	switch ev := e.(type) {
	case Click:
		return gs.click(ev.Row, ev.Col)
	case TimerExpired:
		gs.expire()
		return nil
	default:
		return fmt.Errorf("unknown event %T", e)
	}
}

func (gs *GameSession) Click(row, col int) error {
	return gs.Handle(Click{Row: row, Col: col})
}

// Tick advances the delay gate by one frame.
func (gs *GameSession) Tick(dt time.Duration) {
	if gs.disposed {
		return
	}
	gs.Gate.Advance(dt)
}

// Dispose stops the pending gate; later events are ignored.
func (gs *GameSession) Dispose() {
	gs.Gate.Cancel()
	gs.disposed = true
}

func (gs *GameSession) click(row, col int) error {
	if !gs.Board.InRange(row, col) {
		return fmt.Errorf("click %d,%d: %w", row, col, model.ErrOutOfRange)
	}
	coord := model.Coord{Row: row, Col: col}

	switch gs.State {
	case TS_IDLE:
		if gs.Board.IsMatched(row, col) {
			log.Debugf("GameSession.click %d,%d already matched", row, col)
			return nil
		}
		gs.Selection.add(coord)
		gs.State = TS_ONE_SELECTED
		gs.touch()
	case TS_ONE_SELECTED:
		first := gs.Selection.Cells[0]
		if coord == first || gs.Board.IsMatched(row, col) {
			log.Debugf("GameSession.click %d,%d not selectable", row, col)
			return nil
		}
		gs.Selection.add(coord)
		if gs.Board.ColorAt(first.Row, first.Col) == gs.Board.ColorAt(row, col) {
			gs.Board.MarkMatched(first.Row, first.Col)
			gs.Board.MarkMatched(row, col)
			gs.Selection.Clear()
			gs.State = TS_IDLE
			gs.touch()
			log.Debugf("GameSession match %d,%d - %d,%d", first.Row, first.Col, row, col)
			if gs.Board.AllMatched() {
				gs.finish(TS_WON)
			}
		} else {
			gs.State = TS_RESOLVING
			gs.Gate.Arm()
			gs.touch()
			log.Debugf("GameSession mismatch %d,%d - %d,%d", first.Row, first.Col, row, col)
		}
	default:
		log.Debugf("GameSession.click ignored in %s", gs.State.Name())
	}
	return nil
}

func (gs *GameSession) expire() {
	if gs.State != TS_RESOLVING {
		return
	}
	gs.Attempts--
	gs.Selection.Clear()
	gs.State = TS_IDLE
	gs.touch()
	log.Debugf("GameSession hide mismatch, attempts left:%d", gs.Attempts)
	if gs.Attempts <= 0 {
		gs.finish(TS_LOST)
	}
}

func (gs *GameSession) finish(state TurnState) {
	gs.State = state
	gs.Gate.Cancel()
	gs.touch()
	if gs.ended {
		return
	}
	gs.ended = true
	status := gs.Status()
	log.Infof("GameSession over: %s", status.Name())
	if gs.OnGameEnded != nil {
		gs.OnGameEnded(status)
	}
}

func (gs *GameSession) touch() {
	gs.version++
}

// Version changes every time the visible state changes.
func (gs *GameSession) Version() uint64 {
	return gs.version
}

func (gs *GameSession) Status() Status {
	switch {
	case gs.Board.AllMatched():
		return ST_WON
	case gs.Attempts <= 0:
		return ST_LOST
	default:
		return ST_IN_PROGRESS
	}
}

func (gs *GameSession) Over() bool {
	return gs.State == TS_WON || gs.State == TS_LOST
}

func (gs *GameSession) Rows() int {
	return gs.Board.Rows
}

func (gs *GameSession) Cols() int {
	return gs.Board.Cols
}

func (gs *GameSession) ColorAt(row, col int) model.Color {
	return gs.Board.ColorAt(row, col)
}

// ShouldReveal reports whether the cell is drawn face up.
func (gs *GameSession) ShouldReveal(row, col int) bool {
	if gs.Over() || gs.Board.IsMatched(row, col) {
		return true
	}
	return gs.Selection.Contains(model.Coord{Row: row, Col: col})
}

// Snapshot is the spectator view of the session. Hidden colors are left out.
func (gs *GameSession) Snapshot() model.ServerMessage {
	visibles := make([]model.Visibilize, 0, gs.Rows()*gs.Cols())
	for r := 0; r < gs.Rows(); r++ {
		for c := 0; c < gs.Cols(); c++ {
			v := model.Visibilize{Row: r, Col: c, Matched: gs.Board.IsMatched(r, c)}
			if gs.ShouldReveal(r, c) {
				v.Revealed = true
				v.Color = gs.ColorAt(r, c)
			}
			visibles = append(visibles, v)
		}
	}
	return model.ServerMessage{
		Setup:    []model.Setup{{Rows: gs.Rows(), Cols: gs.Cols()}},
		Visibles: visibles,
		Status: []model.StatusUpdate{{
			State:    gs.State.Name(),
			Status:   gs.Status().Name(),
			Attempts: gs.Attempts,
		}},
	}
}

func (s *Selection) add(c model.Coord) {
	s.Cells[s.Count] = c
	s.Count++
}

func (s *Selection) Clear() {
	*s = Selection{}
}

func (s Selection) Contains(c model.Coord) bool {
	for i := 0; i < s.Count; i++ {
		if s.Cells[i] == c {
			return true
		}
	}
	return false
}
