package spectate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/colormatch/model"
)

func testMessage(attempts int) model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{Rows: 1, Cols: 2}},
		Visibles: []model.Visibilize{
			{Row: 0, Col: 0, Revealed: true, Matched: true, Color: model.Color{R: 0xab, G: 0x01, B: 0xff}},
			{Row: 0, Col: 1},
		},
		Status: []model.StatusUpdate{{State: "IDLE", Status: "IN_PROGRESS", Attempts: attempts}},
	}
}

func startHub(t *testing.T) (*Hub, string, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Loop(ctx)
	srv := httptest.NewServer(hub.Routes())
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + URI_WATCH, cancel
}

// watchFirst returns the first snapshot a new watcher sees.
func watchFirst(t *testing.T, url string) <-chan model.ServerMessage {
	got := make(chan model.ServerMessage, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		defer cancel()
		Watch(ctx, url, func(msg model.ServerMessage) {
			select {
			case got <- msg:
			default:
			}
			cancel()
		})
	}()
	return got
}

func TestWatcherReceivesSnapshot(t *testing.T) {
	hub, url, _ := startHub(t)
	hub.Publish(testMessage(2))

	select {
	case msg := <-watchFirst(t, url):
		require.Len(t, msg.Status, 1)
		assert.Equal(t, 2, msg.Status[0].Attempts)
		require.Len(t, msg.Visibles, 2)
		assert.Equal(t, model.Color{R: 0xab, G: 0x01, B: 0xff}, msg.Visibles[0].Color)
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestEveryWatcherReceivesSnapshot(t *testing.T) {
	hub, url, _ := startHub(t)
	first := watchFirst(t, url)
	second := watchFirst(t, url)
	hub.Publish(testMessage(1))

	for _, ch := range []<-chan model.ServerMessage{first, second} {
		select {
		case msg := <-ch:
			assert.Equal(t, 1, msg.Status[0].Attempts)
		case <-time.After(5 * time.Second):
			t.Fatal("no snapshot received")
		}
	}
}

func TestWatchEndsWhenHubStops(t *testing.T) {
	hub, url, stopHub := startHub(t)
	hub.Publish(testMessage(3))

	received := make(chan struct{}, 1)
	result := make(chan error, 1)
	go func() {
		result <- Watch(context.Background(), url, func(model.ServerMessage) {
			select {
			case received <- struct{}{}:
			default:
			}
		})
	}()

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot received")
	}
	stopHub()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not end")
	}
}

func TestPlainHttpRejected(t *testing.T) {
	_, url, _ := startHub(t)
	httpURL := "http" + strings.TrimPrefix(url, "ws")

	res, err := http.Get(httpURL)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = http.Get(strings.TrimSuffix(httpURL, URI_WATCH) + "/nothing")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.Updates)+5; i++ {
			hub.Publish(testMessage(i))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running loop")
	}
	assert.Len(t, hub.Updates, cap(hub.Updates))
}

func TestWatchDialError(t *testing.T) {
	err := Watch(context.Background(), "ws://127.0.0.1:1/watch", func(model.ServerMessage) {})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	out := Render(testMessage(2))
	assert.Equal(t, "#AB01FF .......\nIN_PROGRESS  state:IDLE  attempts:2\n", out)
	assert.Equal(t, "", Render(model.ServerMessage{}))
}

func TestWatcherStateName(t *testing.T) {
	assert.Equal(t, "WATCH", WS_WATCH.Name())
	assert.Equal(t, "N/A(9)", WatcherState(9).Name())
}
