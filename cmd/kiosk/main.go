package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/promo-kiosk/internal/application/service"
	"github.com/sangkips/promo-kiosk/internal/config"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/sangkips/promo-kiosk/internal/infrastructure/catalog"
	"github.com/sangkips/promo-kiosk/internal/presentation/console"
	"github.com/sangkips/promo-kiosk/pkg/logger"
	"github.com/sangkips/promo-kiosk/pkg/printer"
)

func main() {
	cfg := config.Load()

	// stdout carries the customer conversation, logs go to stderr
	appLogger := logger.New(logger.Options{
		Service: cfg.App.Name + "-kiosk",
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Store.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid store configuration")
	}
	clock, err := cfg.Store.Clock(loc)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid store configuration")
	}

	source, err := catalog.Open(ctx, cfg, loc, appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog")
	}
	defer source.Close()

	store, err := service.LoadStore(ctx, source.Repository, appLogger)
	if err != nil {
		log.Fatal().Err(err).Str("source", source.Kind.String()).Msg("failed to load catalog")
	}

	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
		Path:    cfg.Printer.SpoolPath,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, cfg.Store.Name, cfg.Printer.Width, appLogger)
	defer printerService.Close()

	status := printerService.GetStatus()
	appLogger.Info().
		Str("type", status.Type).
		Bool("configured", status.Configured).
		Bool("connected", status.Connected).
		Msg("receipt printer")

	engine := service.NewFulfillmentEngine(store, appLogger)
	orders := service.NewOrderService(engine, service.MembershipPolicy{
		RatePercent: cfg.Membership.RatePercent,
		Cap:         cfg.Membership.Cap,
	}, clock, appLogger)

	output := console.NewOutputView(os.Stdout).WithStoreName(cfg.Store.Name)
	input := console.NewInputView(os.Stdin, os.Stdout)
	controller := console.NewController(orders, printerService, input, output, appLogger)

	if err := controller.Run(ctx); err != nil {
		if inventory.IsInvariantViolation(err) {
			log.Fatal().Err(err).Msg("inventory corrupted, stopping kiosk")
		}
		log.Error().Err(err).Msg("kiosk session ended")
		os.Exit(1)
	}
}
