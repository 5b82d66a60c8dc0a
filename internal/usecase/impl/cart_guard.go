package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

// Conflict and clear-cart toasts.
const (
	conflictItemMessage    = "Items like %s are not available at this new location."
	conflictGenericMessage = "Your cart items are from a different store."
	cartClearedMessage     = "Cart cleared for new location."
	clearManuallyMessage   = "Please clear your cart manually."
)

// cartGuard implements the CartGuardUsecase interface.
//
// Every trigger takes a new generation. Validation calls cannot be cancelled on
// the wire, so a response is only applied while its generation is still the latest.
type cartGuard struct {
	locationRepo repository.LocationRepository
	tokens       repository.TokenRepository
	carts        service.CartGateway
	warehouses   usecase.WarehouseUsecase
	notifier     service.Notifier
	bus          service.LocationEventBus
	logger       *slog.Logger

	generation atomic.Uint64

	mu     sync.Mutex
	status entity.GuardStatus
	record entity.LocationRecord
}

// NewCartGuard is the constructor for cartGuard.
func NewCartGuard(
	locationRepo repository.LocationRepository,
	tokens repository.TokenRepository,
	carts service.CartGateway,
	warehouses usecase.WarehouseUsecase,
	notifier service.Notifier,
	bus service.LocationEventBus,
	logger *slog.Logger,
) usecase.CartGuardUsecase {
	return &cartGuard{
		locationRepo: locationRepo,
		tokens:       tokens,
		carts:        carts,
		warehouses:   warehouses,
		notifier:     notifier,
		bus:          bus,
		logger:       logger,
		status:       entity.GuardStatus{State: entity.GuardStateIdle},
	}
}

func (g *cartGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func (g *cartGuard) Validate(ctx context.Context) (entity.GuardStatus, error) {
	generation := g.generation.Add(1)

	tokens, err := g.tokens.Load(ctx)
	if err != nil {
		return g.Status(), errors.Wrap(err, "failed to load tokens")
	}
	if tokens == nil {
		// Guests have no server cart to protect.
		g.settle(generation, entity.GuardStatus{State: entity.GuardStateIdle}, entity.NoLocation)

		return g.Status(), nil
	}

	record, err := effectiveLocation(ctx, g.locationRepo)
	if err != nil {
		return g.Status(), err
	}
	if record.IsNone() {
		g.settle(generation, entity.GuardStatus{State: entity.GuardStateIdle}, entity.NoLocation)

		return g.Status(), nil
	}

	if !g.settle(generation, entity.GuardStatus{State: entity.GuardStateValidating}, record) {
		return g.Status(), nil
	}

	result, err := g.carts.ValidateCart(ctx, validationRequest(record))
	if err != nil {
		if g.settle(generation, entity.GuardStatus{State: entity.GuardStateFailed, LastError: err.Error()}, record) {
			g.log(ctx).Warn("Cart validation failed", slog.Uint64("generation", generation), slog.Any("error", err))
		}

		return g.Status(), nil
	}

	if result.IsValid {
		if !g.settle(generation, entity.GuardStatus{State: entity.GuardStateConsistent, WarehouseID: result.WarehouseID}, record) {
			g.logStale(ctx, generation)

			return g.Status(), nil
		}

		if err := g.warehouses.Remember(ctx, record, result.WarehouseID); err != nil {
			g.log(ctx).Warn("Failed to cache validated warehouse", slog.Any("error", err))
		}

		return g.Status(), nil
	}

	conflict := entity.GuardStatus{
		State:            entity.GuardStateConflict,
		WarehouseID:      result.WarehouseID,
		UnavailableItems: result.UnavailableItems,
	}
	if !g.settle(generation, conflict, record) {
		g.logStale(ctx, generation)

		return g.Status(), nil
	}

	g.log(ctx).Info("Cart conflicts with new location",
		slog.Uint64("generation", generation),
		slog.Int("unavailable_items", len(result.UnavailableItems)),
	)
	g.notifier.Warning(ctx, conflictMessage(result.UnavailableItems))

	return g.Status(), nil
}

// ResolveConflict never clears the cart without an explicit CLEAR_CART decision.
func (g *cartGuard) ResolveConflict(ctx context.Context, decision entity.ConflictDecision) (entity.GuardStatus, error) {
	g.mu.Lock()
	pending := g.status.State == entity.GuardStateConflict
	record := g.record
	g.mu.Unlock()

	if !pending {
		return g.Status(), domainerrors.ErrNoPendingConflict
	}

	generation := g.generation.Load()

	switch decision {
	case entity.ConflictDecisionKeepCart:
		g.settle(generation, entity.GuardStatus{State: entity.GuardStateIdle}, record)

		return g.Status(), nil

	case entity.ConflictDecisionClearCart:
		if err := g.carts.ClearCart(ctx); err != nil {
			g.log(ctx).Warn("Clearing conflicting cart failed", slog.Any("error", err))
			g.notifier.Error(ctx, clearManuallyMessage)

			return g.Status(), errors.Wrap(err, "failed to clear cart")
		}

		g.settle(generation, entity.GuardStatus{State: entity.GuardStateConsistent}, record)
		g.notifier.Info(ctx, cartClearedMessage)

		return g.Status(), nil

	default:
		return g.Status(), domainerrors.ErrInvalidInput.WithDetails("unknown decision " + string(decision))
	}
}

func (g *cartGuard) Status() entity.GuardStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	status := g.status
	status.UnavailableItems = append([]entity.UnavailableItem(nil), g.status.UnavailableItems...)

	return status
}

func (g *cartGuard) Reset() {
	g.settle(g.generation.Add(1), entity.GuardStatus{State: entity.GuardStateIdle}, entity.NoLocation)
}

// Listen validates after each location change. Validations run concurrently so
// that a slow response never delays the next trigger.
func (g *cartGuard) Listen(ctx context.Context) error {
	events, err := g.bus.Subscribe(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to location changes")
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	for event := range events {
		g.log(ctx).Debug("Location changed, validating cart", slog.String("source", string(event.Source)))

		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := g.Validate(ctx); err != nil {
				g.log(ctx).Warn("Cart validation skipped", slog.Any("error", err))
			}
		}()
	}

	return nil
}

// settle applies status if generation is still the latest and reports whether it did.
func (g *cartGuard) settle(generation uint64, status entity.GuardStatus, record entity.LocationRecord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.generation.Load() != generation {
		return false
	}

	status.Generation = generation
	g.status = status
	g.record = record

	return true
}

func (g *cartGuard) logStale(ctx context.Context, generation uint64) {
	g.log(ctx).Debug("Discarding stale cart validation",
		slog.Uint64("generation", generation),
		slog.Uint64("latest", g.generation.Load()),
	)
}

// validationRequest targets the delivery address when there is one.
func validationRequest(record entity.LocationRecord) entity.CartValidationRequest {
	if record.Delivery != nil {
		return entity.CartValidationRequest{AddressID: record.Delivery.AddressID}
	}

	return entity.CartValidationRequest{
		Latitude:  record.Browsing.Latitude,
		Longitude: record.Browsing.Longitude,
	}
}

func conflictMessage(items []entity.UnavailableItem) string {
	if len(items) > 0 && items[0].ProductName != "" {
		return fmt.Sprintf(conflictItemMessage, items[0].ProductName)
	}

	return conflictGenericMessage
}
