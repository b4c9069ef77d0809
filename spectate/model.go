package spectate

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/zucenko/colormatch/model"
)

const URI_WATCH = "/watch"

// Hub fans game snapshots out to websocket watchers. Watchers is owned by
// the Loop goroutine.
type Hub struct {
	Watchers   []*Watcher
	Register   chan *Watcher
	Unregister chan *Watcher
	Updates    chan model.ServerMessage
	Upgrader   *websocket.Upgrader

	last   *model.ServerMessage
	nextId int64
	done   chan struct{}
}

type WatcherState int

const (
	WS_NEW WatcherState = iota + 1
	WS_WATCH
	WS_GONE
)

func (s WatcherState) Name() string {
	switch s {
	case WS_NEW:
		return "NEW"
	case WS_WATCH:
		return "WATCH"
	case WS_GONE:
		return "GONE"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Watcher struct {
	Id    int
	State WatcherState
	Conn  *websocket.Conn

	// MessagesToSend is written and closed by the hub only.
	MessagesToSend chan model.ServerMessage

	DebugOutMessages int
}
