package session

import (
	"fmt"
	"time"
)

const (
	ROWS     = 4
	COLUMNS  = 4
	ATTEMPTS = 3
	DELAY    = 1000 * time.Millisecond
)

func (s TurnState) Name() string {
	switch s {
	case TS_IDLE:
		return "IDLE"
	case TS_ONE_SELECTED:
		return "ONE_SELECTED"
	case TS_RESOLVING:
		return "RESOLVING"
	case TS_WON:
		return "WON"
	case TS_LOST:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

func (s Status) Name() string {
	switch s {
	case ST_IN_PROGRESS:
		return "IN_PROGRESS"
	case ST_WON:
		return "WON"
	case ST_LOST:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}
