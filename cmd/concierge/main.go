package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/caretrip/concierge/internal/actions"
	"github.com/caretrip/concierge/internal/api"
	"github.com/caretrip/concierge/internal/config"
	"github.com/caretrip/concierge/internal/handoff"
	"github.com/caretrip/concierge/internal/location"
	"github.com/caretrip/concierge/internal/playback"
	"github.com/caretrip/concierge/internal/scenario"
	"github.com/caretrip/concierge/internal/session"
	"github.com/caretrip/concierge/internal/status"
	"github.com/caretrip/concierge/internal/storage/sqlite"
	"github.com/caretrip/concierge/internal/upstream"
	"github.com/caretrip/concierge/internal/websocket"
	"github.com/caretrip/concierge/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if os.IsNotExist(errors.Unwrap(err)) {
			cfg = config.Default()
		} else {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("Service exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	// Storage
	reservationStorage := sqlite.NewReservationStorage(db, log)
	actionStorage := sqlite.NewActionStorage(db, log)
	alertStorage := sqlite.NewAlertStorage(db, log)

	// Core services
	catalog := scenario.NewCatalog(time.Now())
	sessions := session.NewStore(cfg.Tracking.SessionExpiry(), log)
	tracker := location.NewTracker(cfg.Tracking.WalkingPace, log)
	alerter := location.NewAlerter(alertStorage, log)
	handoffs := handoff.NewRepository(log)
	actionService := actions.NewService(reservationStorage, actionStorage, sessions, log)
	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), log)

	// Playback and live feeds
	wsServer := websocket.NewServer(log)

	refresher := status.NewRefresher(cfg.Demo.CountdownRefresh(), func(c status.Countdown) {
		wsServer.Broadcast("countdown", c)
	}, log)

	player := playback.NewPlayer(cfg.Demo.TickInterval(), func(u playback.Update) {
		wsServer.Broadcast("playback_update", u)
		if u.Event != "" {
			wsServer.Broadcast("playback_event", u)
		}
		// Keep the departure countdown pointed at the scenario on screen.
		if s, ok := catalog.ByID(u.ScenarioID); ok && len(s.Reservation.Flights) > 0 {
			refresher.SetDeparture(s.Reservation.Flights[0].DepartureTime)
		}
	}, log)
	defer player.Close()

	handler := api.NewHandler(catalog, player, sessions, reservationStorage,
		actionService, tracker, alerter, handoffs, upstreamClient, wsServer, cfg, log)
	router := api.NewRouter(handler, cfg, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening",
			logger.String("addr", cfg.Server.Addr()),
			logger.Bool("upstream", upstreamClient.Enabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		refresher.Run(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		wsServer.Close()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
