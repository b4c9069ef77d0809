package spectate

import (
	"context"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/zucenko/colormatch/model"
)

// Watch connects to a hub at url and calls fn for every snapshot until the
// hub closes the stream or ctx is done.
func Watch(ctx context.Context, url string, fn func(model.ServerMessage)) error {
	con, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer con.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			con.Close()
		case <-stop:
		}
	}()

	for {
		_, r, err := con.NextReader()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		msg := model.ServerMessage{}
		if err := gob.NewDecoder(r).Decode(&msg); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fn(msg)
	}
}

// Render draws a snapshot as text, one board row per line. Hidden cells are
// dots, revealed cells show their hex color, matched ones in upper case.
func Render(msg model.ServerMessage) string {
	if len(msg.Setup) == 0 {
		return ""
	}
	setup := msg.Setup[0]
	grid := make([][]string, setup.Rows)
	for r := range grid {
		grid[r] = make([]string, setup.Cols)
		for c := range grid[r] {
			grid[r][c] = "......."
		}
	}
	for _, v := range msg.Visibles {
		if !v.Revealed || v.Row >= setup.Rows || v.Col >= setup.Cols {
			continue
		}
		hex := fmt.Sprintf("#%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B)
		if v.Matched {
			hex = strings.ToUpper(hex)
		}
		grid[v.Row][v.Col] = hex
	}

	b := strings.Builder{}
	for _, line := range grid {
		b.WriteString(strings.Join(line, " "))
		b.WriteString("\n")
	}
	for _, st := range msg.Status {
		fmt.Fprintf(&b, "%s  state:%s  attempts:%d\n", st.Status, st.State, st.Attempts)
	}
	return b.String()
}
