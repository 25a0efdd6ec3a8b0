package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/park285/kifu-viewer/internal/kifuapi"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/util"
)

func main() {
	gameID := flag.String("game", "", "game id to render; empty starts a new game")
	move := flag.Int("move", 0, "move index to render")
	maxMoves := flag.Int("max-moves", 10, "max moves when starting a new game")
	html := flag.Bool("html", false, "print gote pieces as <span class=\"gote-piece\"> instead of v<label>")
	flag.Parse()

	baseURL := os.Getenv("KIFU_API_BASE_URL")
	sessionID := os.Getenv("KIFU_X_SESSION_ID")
	if baseURL == "" {
		log.Fatal("KIFU_API_BASE_URL is required")
	}

	headers := func() map[string]string {
		m := map[string]string{}
		if sessionID != "" {
			m["X-Session-Id"] = sessionID
		}
		return m
	}
	client := kifuapi.NewClient(baseURL,
		kifuapi.WithHeaderProvider(headers),
		kifuapi.WithTimeout(120*time.Second),
	)
	format := presenter.NewFormatter(nil)

	id := *gameID
	if id == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		rec, err := client.StartGame(ctx, *maxMoves)
		cancel()
		if err != nil {
			log.Fatalf("/api/start_game error: %v", err)
		}
		log.Printf("/api/start_game ok: id=%s sente=%s gote=%s moves=%d", rec.GameID, rec.Sente, rec.Gote, rec.MoveCount())
		for _, e := range format.MoveList(rec) {
			fmt.Printf("%3s %-8s %s\n", e.Number, e.Notation, e.Preview)
		}
		id = rec.GameID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	bs, err := client.FetchBoardState(ctx, id, *move)
	if err != nil {
		log.Fatalf("/api/board_state error: %v", err)
	}
	markup := presenter.PlainMarkup
	if *html {
		markup = presenter.HTMLMarkup
	}
	fmt.Println(util.TrimTrailingNewlines(presenter.MarkGote(bs.Board, markup)))
	fmt.Printf("%s  turn=%s\n", format.MoveNumber(*move), bs.TurnLabel)
	fmt.Printf("sente: %s\n", format.Captured(bs.Captured.Sente))
	fmt.Printf("gote:  %s\n", format.Captured(bs.Captured.Gote))
}
