package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"fct/internal/api/handlers"
	"fct/internal/api/responder"
	"fct/internal/api/server"
	"fct/internal/config"
	"fct/internal/logger"
	"fct/internal/validation"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}

	envConfig, err := config.NewEnvConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	envConfig.Print()

	if _, err := logger.Setup(envConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := validation.Setup(); err != nil {
		log.Fatal().Err(err).Msg("failed to configure request validation")
	}

	overrides, err := validation.LoadMessages(envConfig.Validation.MessagesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load validation messages")
	}

	errResponder := responder.New(
		responder.WithTranslator(validation.NewTranslator(overrides)),
		responder.WithValidationFallback(envConfig.Validation.FallbackMessage),
	)
	appHandler := handlers.NewHandler(errResponder, envConfig)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s — starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)

	log.Info().Msg("service shutdown gracefully")
}
