package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Jaxa123/jaxa-tg/internal/bot"
	"github.com/Jaxa123/jaxa-tg/internal/config"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
	"github.com/Jaxa123/jaxa-tg/internal/notify"
	"github.com/Jaxa123/jaxa-tg/internal/ops"
	"github.com/Jaxa123/jaxa-tg/internal/service"
	"github.com/Jaxa123/jaxa-tg/internal/store"
)

// consoleSender prints staff notifications to the process log. A real
// deployment replaces this with a messenger transport adapter.
type consoleSender struct{}

func (consoleSender) Send(_ context.Context, userID int64, reply gateway.Reply) error {
	log.Printf("notify %d:\n%s", userID, reply.Text)
	return nil
}

func main() {
	log.Println("Ordering bot started")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	menu := config.DefaultMenu()
	if cfg.MenuPath != "" {
		menu, err = config.LoadMenu(cfg.MenuPath)
		if err != nil {
			log.Fatalf("Failed to load menu: %v", err)
		}
	}

	catalog := store.NewMemoryCatalog()
	catalog.Seed(menu)
	carts := store.NewMemoryCarts()
	ledger := store.NewMemoryLedger()

	notifier := notify.New(consoleSender{}, cfg.AdminIDs)
	checkout := service.NewCheckoutService(catalog, carts, ledger, notifier)
	handler := bot.New(catalog, carts, ledger, checkout, cfg.AdminIDs)

	go func() {
		log.Printf("Ops server listening on %s", cfg.OpsAddr)
		if err := http.ListenAndServe(cfg.OpsAddr, ops.NewRouter(ledger)); err != nil {
			log.Fatalf("Ops server failed: %v", err)
		}
	}()

	runConsole(handler)
}

// runConsole reads events from stdin for local exercising:
// "/start" and "/admin" are commands, "@token" is a button press,
// anything else is free text. Events run as user id 1.
func runConsole(handler *bot.Handler) {
	const userID = 1
	fmt.Println(`Console gateway. Type /start to begin, "@token" presses a button.`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev := gateway.Event{UserID: userID, Username: "console"}
		switch {
		case strings.HasPrefix(line, "/"):
			ev.Command = strings.TrimPrefix(line, "/")
		case strings.HasPrefix(line, "@"):
			ev.Selection = strings.TrimPrefix(line, "@")
		default:
			ev.Text = line
		}

		reply := handler.Handle(context.Background(), ev)
		fmt.Println()
		fmt.Println(reply.Text)
		for _, choice := range reply.Choices {
			fmt.Printf("  [%s] @%s\n", choice.Label, choice.Token)
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}
