package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"orderbot/cmd/orderbot/bot"
	"orderbot/cmd/orderbot/config"
	"orderbot/cmd/orderbot/handlers"
	"orderbot/cmd/orderbot/logger"
	"orderbot/cmd/orderbot/notifier"
	"orderbot/cmd/orderbot/routing"
	db "orderbot/cmd/orderbot/storage"
)

func main() {
	sugarLogger, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	c := config.NewConfig()
	if err = config.Init(c); err != nil {
		sugarLogger.Fatalf("Failed to initialize config: %v", err)
	}

	sugarLogger.Infof("bot token: %s", configured(c.BotToken != ""))
	sugarLogger.Infof("chat id: %s", configured(c.ChatID != 0))

	s := db.NewStorage(c, sugarLogger)

	tg := notifier.NewTelegramClient(notifier.DefaultAPIBase, c.BotToken, c.ChatID, sugarLogger)
	pool := notifier.NewPool(tg, c.NotifyWorkers, sugarLogger)
	pool.Start()

	ctrl := handlers.NewController(c, s, sugarLogger, pool)

	r := chi.NewRouter()
	routing.InitMiddleware(r, c, ctrl)
	routing.Routing(r, ctrl)

	adminBot, err := bot.NewBot(c.BotToken, s, bot.NewAllowList(c.AdminIDs), sugarLogger)
	if err != nil {
		// The HTTP API stays up even when the bot cannot start.
		sugarLogger.Errorf("Failed to start telegram bot: %v", err)
	} else {
		go adminBot.Run()
	}

	srv := &http.Server{Addr: c.Addr, Handler: r}

	go func() {
		sugarLogger.Infof("starting server on %s", c.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugarLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugarLogger.Info("shutting down...")

	if adminBot != nil {
		adminBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugarLogger.Errorf("server shutdown failed: %v", err)
	}

	pool.Drain()
	sugarLogger.Info("server stopped")
}

func configured(set bool) string {
	if set {
		return "Set"
	}
	return "Not set"
}
