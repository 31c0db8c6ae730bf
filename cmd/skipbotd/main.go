package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rinksim/skipbot/internal/api"
	"github.com/rinksim/skipbot/internal/engine"
	"github.com/rinksim/skipbot/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[skipbotd] ", log.LstdFlags)

	addr := envStr("SKIPBOT_ADDR", "127.0.0.1:8091")
	dbPath := envStr("SKIPBOT_DB", "skipbot.db")
	difficulty := envStr("SKIPBOT_DIFFICULTY", engine.DefaultDifficulty)
	seed := envUint("SKIPBOT_SEED", uint64(time.Now().UnixNano()))

	var db store.DB
	if dbPath != "" {
		sqlDB, err := store.NewSQLiteDB(dbPath)
		if err != nil {
			logger.Fatalf("open store: %v", err)
		}
		if err := sqlDB.Migrate(); err != nil {
			logger.Fatalf("migrate store: %v", err)
		}
		defer sqlDB.Close()
		db = sqlDB
	}

	eng := engine.New(engine.NewSeeded(seed))
	if !eng.SetDifficulty(difficulty) {
		logger.Printf("unknown difficulty %q, staying on %s", difficulty, eng.Difficulty().ID)
	}

	server := api.NewServer(eng, db)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
	}

	go func() {
		logger.Printf("listening on %s (difficulty=%s store=%v)", addr, eng.Difficulty().ID, db != nil)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
