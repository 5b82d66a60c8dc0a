package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"quickdash/config"
	"quickdash/internal/delivery"
	"quickdash/internal/delivery/http"
	httpmiddleware "quickdash/internal/delivery/http/middleware"
	"quickdash/internal/delivery/http/router/handler"
	"quickdash/internal/delivery/middleware"
	"quickdash/internal/delivery/worker"
	"quickdash/internal/domain/service"
	"quickdash/internal/infra/auth"
	"quickdash/internal/infra/backend"
	"quickdash/internal/infra/geocoding"
	"quickdash/internal/infra/geolocation"
	logs "quickdash/internal/infra/log"
	"quickdash/internal/infra/notification"
	"quickdash/internal/infra/persistence/kv"
	"quickdash/internal/infra/pubsub"
	"quickdash/internal/infra/storage"
	"quickdash/internal/usecase"
	"quickdash/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	if err := runSubcommand(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve() {
	fx.New(
		injectCore(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// injectCore wires everything below the delivery layer. One-shot commands reuse it.
func injectCore() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return kv.Module
}

func injectService() fx.Option {
	return fx.Options(
		backend.Module,
		fx.Provide(
			geolocation.NewPositionProvider,
			geocoding.NewNominatimGeocoder,
			auth.NewJWTInspector,
			notification.NewToastNotifier,
			newNotifier,
		),
	)
}

// newNotifier exposes the toast buffer as the usecases' Notifier
func newNotifier(toasts *notification.ToastNotifier) service.Notifier {
	return toasts
}

// newReloader lets the location service trigger a session reload without
// depending on the session service directly
func newReloader(sessions usecase.SessionUsecase) service.Reloader {
	return sessions
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWarehouseResolver,
			impl.NewLocationService,
			impl.NewCartService,
			impl.NewCartGuard,
			impl.NewSessionService,
			newReloader,
			impl.NewTabSync,
			impl.NewGeolocationService,
			impl.NewPickerService,
			impl.NewAddressService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
			handler.NewAuthHandler,
			handler.NewPickerHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
