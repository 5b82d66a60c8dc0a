package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"quickdash/internal/domain/lifecycle"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - serve:  run the local HTTP surface and the session worker (default)
// - detect: detect the device position and store it as browsing location
// - browse: store a browsing location from coordinates
// - status: print the session summary

const commandTimeout = 30 * time.Second

func runSubcommand(args []string) error {
	if len(args) == 0 {
		serve()

		return nil
	}

	switch args[0] {
	case "serve":
		serve()

		return nil
	case "detect":
		return runOnce(func(ctx context.Context, uc oneShotUsecases) (any, error) {
			return uc.Geolocation.DetectAndSetBrowsing(ctx)
		})
	case "browse":
		return handleBrowse(args[1:])
	case "status":
		return runOnce(func(ctx context.Context, uc oneShotUsecases) (any, error) {
			return uc.Session.Status(ctx)
		})
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", args[0])
	}
}

func handleBrowse(args []string) error {
	browseCmd := flag.NewFlagSet("browse", flag.ExitOnError)
	lat := browseCmd.Float64("lat", 0, "Latitude of the browsing location")
	lng := browseCmd.Float64("lng", 0, "Longitude of the browsing location")
	city := browseCmd.String("city", "", "City name shown in the navbar")
	area := browseCmd.String("area", "", "Area label shown in the navbar")

	if err := browseCmd.Parse(args); err != nil {
		return errors.Wrap(err, "parse browse flags")
	}

	return runOnce(func(ctx context.Context, uc oneShotUsecases) (any, error) {
		input := &usecase.BrowsingInput{
			Latitude:  lat,
			Longitude: lng,
			CityName:  *city,
			AreaLabel: *area,
		}
		if err := uc.Location.SetBrowsingLocation(ctx, input); err != nil {
			return nil, err
		}

		return uc.Location.GetDisplayLabel(ctx)
	})
}

type oneShotUsecases struct {
	Geolocation usecase.GeolocationUsecase
	Location    usecase.LocationUsecase
	Session     usecase.SessionUsecase
}

// runOnce starts the core graph, runs fn and prints its result as JSON.
func runOnce(fn func(ctx context.Context, uc oneShotUsecases) (any, error)) error {
	var uc oneShotUsecases

	app := fx.New(
		fx.NopLogger,
		injectCore(),
		fx.Populate(&uc.Geolocation, &uc.Location, &uc.Session),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	result, err := fn(ctx, uc)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(result))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: quickdash <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  serve    Run the local HTTP surface and the session worker (default)")
	fmt.Fprintln(os.Stderr, "  detect   Detect the device position and store it as browsing location")
	fmt.Fprintln(os.Stderr, "  browse   Store a browsing location: browse -lat 12.97 -lng 77.59 -city Bengaluru")
	fmt.Fprintln(os.Stderr, "  status   Print the session summary")
}
