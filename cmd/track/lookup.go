package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tracking-bridge/internal/app"
	"tracking-bridge/internal/core/config"
	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/ports"
	"tracking-bridge/internal/features/tracking/service"

	"github.com/urfave/cli/v2"
)

// lookupMode selects what the lookup command prints.
type lookupMode struct {
	mock bool
	raw  bool
	link bool
}

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Print the tracking record of a shipment as JSON",
		ArgsUsage: "<pro>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "carrier",
				Aliases: []string{"c"},
				Value:   "estes",
				Usage:   "carrier to query",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "print the canned record without calling the carrier",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "print the namespace-normalized carrier response",
			},
			&cli.BoolFlag{
				Name:  "link",
				Usage: "print the carrier tracking page URL",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Value: ".",
				Usage: "directory holding the .env file",
			},
		},
		Action: lookupAction,
	}
}

func lookupAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("pro required", exitUsage)
	}

	cfg, err := config.Load(c.String("config-dir"))
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	defer logger.Sync()

	svc, closeCache := app.NewTrackingService(cfg)
	defer closeCache()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := lookupMode{mock: c.Bool("mock"), raw: c.Bool("raw"), link: c.Bool("link")}
	return runLookup(ctx, svc, c.App.Writer, c.String("carrier"), c.Args().First(), mode, cfg.RawBudgetBytes)
}

// runLookup prints the requested view of a shipment and maps failures to exit codes.
func runLookup(ctx context.Context, svc ports.TrackingService, out io.Writer, carrier, pro string, mode lookupMode, rawBudget int) error {
	switch {
	case mode.link:
		link, err := svc.DeepLink(carrier, pro)
		if err != nil {
			return exitError(err)
		}
		_, err = fmt.Fprintln(out, link)
		return err
	case mode.raw:
		raw, err := svc.Raw(ctx, carrier, pro, rawBudget)
		if err != nil {
			return exitError(err)
		}
		_, err = fmt.Fprintln(out, raw)
		return err
	}

	var record *domain.TrackingRecord
	var err error
	if mode.mock {
		record, err = svc.Mock(carrier, pro)
	} else {
		record, err = svc.Track(ctx, carrier, pro)
	}
	if err != nil {
		return exitError(err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}

func exitError(err error) error {
	var notFound *service.NotFoundError
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier), errors.Is(err, service.ErrCourierNotSupported):
		return cli.Exit(err.Error(), exitUsage)
	case errors.As(err, &notFound):
		return cli.Exit(err.Error(), exitNotFound)
	default:
		return cli.Exit(err.Error(), exitFailure)
	}
}
