package model

// ServerMessage is what a spectator receives after every change of the game.
type ServerMessage struct {
	Setup    []Setup
	Visibles []Visibilize
	Status   []StatusUpdate
}

type Setup struct {
	Rows, Cols int
}

// Visibilize describes one cell as the player currently sees it. Color is
// only filled for revealed cells.
type Visibilize struct {
	Row, Col int
	Revealed bool
	Matched  bool
	Color    Color
}

type StatusUpdate struct {
	State    string
	Status   string
	Attempts int
}
