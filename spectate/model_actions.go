package spectate

import (
	"context"
	"encoding/gob"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/colormatch/model"
)

func NewHub() *Hub {
	return &Hub{
		Watchers:   make([]*Watcher, 0),
		Register:   make(chan *Watcher),
		Unregister: make(chan *Watcher),
		Updates:    make(chan model.ServerMessage, 16),
		Upgrader:   &websocket.Upgrader{},
		done:       make(chan struct{}),
	}
}

func (h *Hub) Routes() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_WATCH, h.HandleHttpCall())
	return router
}

// Serve runs the spectator endpoint on addr until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Infof("Hub.Serve spectators on %s%s", addr, URI_WATCH)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Publish hands a snapshot to the hub without ever blocking the caller.
func (h *Hub) Publish(msg model.ServerMessage) {
	select {
	case h.Updates <- msg:
	default:
		log.Warn("Hub.Publish dropping snapshot, Updates FULL")
	}
}

func (h *Hub) Loop(ctx context.Context) {
	log.Debug("Hub.Loop starting")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, wt := range h.Watchers {
				wt.State = WS_GONE
				close(wt.MessagesToSend)
			}
			h.Watchers = nil
			log.Debug("Hub.Loop ENDED")
			return
		case wt := <-h.Register:
			wt.State = WS_WATCH
			h.Watchers = append(h.Watchers, wt)
			log.Infof("Hub watcher %d connected, watching:%d", wt.Id, len(h.Watchers))
			if h.last != nil {
				wt.send(*h.last)
			}
		case wt := <-h.Unregister:
			for i, other := range h.Watchers {
				if other == wt {
					h.Watchers = append(h.Watchers[:i], h.Watchers[i+1:]...)
					wt.State = WS_GONE
					close(wt.MessagesToSend)
					log.Infof("Hub watcher %d left, watching:%d", wt.Id, len(h.Watchers))
					break
				}
			}
		case msg := <-h.Updates:
			h.last = &msg
			for _, wt := range h.Watchers {
				wt.send(msg)
			}
		}
	}
}

func (h *Hub) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// the upgrader already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		wt := &Watcher{
			Id:             int(atomic.AddInt64(&h.nextId, 1)),
			State:          WS_NEW,
			Conn:           con,
			MessagesToSend: make(chan model.ServerMessage, 10),
		}
		select {
		case h.Register <- wt:
		case <-h.done:
			return
		case <-time.After(timeout):
			log.Warn("HandleHttpCall Register TIMEOUTED")
			return
		}

		go wt.LoopChannelWrite()
		wt.LoopChannelRead()

		select {
		case h.Unregister <- wt:
		case <-h.done:
		}
	}
}

func (wt *Watcher) send(msg model.ServerMessage) {
	select {
	case wt.MessagesToSend <- msg:
	default:
		log.Warnf("Hub watcher %d too slow, dropping snapshot", wt.Id)
	}
}

// LoopChannelRead only watches for the peer going away; watchers never talk.
func (wt *Watcher) LoopChannelRead() {
	for {
		if _, _, err := wt.Conn.NextReader(); err != nil {
			log.Debugf("Watcher %d read ended: %v", wt.Id, err)
			return
		}
	}
}

// LoopChannelWrite runs until the hub closes MessagesToSend or a write fails.
func (wt *Watcher) LoopChannelWrite() {
	defer wt.Conn.Close()
	for mes := range wt.MessagesToSend {
		w, err := wt.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("Watcher %d cant get writer %v", wt.Id, err)
			return
		}
		if err := gob.NewEncoder(w).Encode(mes); err != nil {
			log.Warnf("Watcher %d cant encode %v", wt.Id, err)
			return
		}
		if err := w.Close(); err != nil {
			log.Warnf("Watcher %d cant flush %v", wt.Id, err)
			return
		}
		wt.DebugOutMessages++
	}
	wt.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}
