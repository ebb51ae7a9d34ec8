package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
)

func main() {
	// Load .env for local development, in production the environment is
	// set by the deployment
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "gorm.db")
	}

	if err := models.Connect(dsn); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group(""))

	addr := ":8080"
	if port, ok := os.LookupEnv("PORT"); ok {
		addr = ":" + port
	}

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("addr", addr).Msg("starting server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
