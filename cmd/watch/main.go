// Command watch follows a running game from the terminal. It connects to the
// spectator endpoint of a game started with COLORMATCH_SPECTATE_ADDR and
// prints the board every time it changes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/colormatch/config"
	"github.com/zucenko/colormatch/model"
	"github.com/zucenko/colormatch/spectate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	url := cfg.WatchURL
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Infof("watching %s", url)
	err = spectate.Watch(ctx, url, func(msg model.ServerMessage) {
		fmt.Println(spectate.Render(msg))
	})
	if err != nil {
		log.Fatal(err)
	}
}
