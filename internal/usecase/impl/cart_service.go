package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

const (
	itemAddedMessage     = "Item added to cart"
	addItemFailedMessage = "Failed to add item"
	itemRemovedMessage   = "Item removed"
	removeFailedMessage  = "Failed to remove item"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	locationRepo repository.LocationRepository
	tokens       repository.TokenRepository
	warehouses   usecase.WarehouseUsecase
	carts        service.CartGateway
	notifier     service.Notifier
	logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	locationRepo repository.LocationRepository,
	tokens repository.TokenRepository,
	warehouses usecase.WarehouseUsecase,
	carts service.CartGateway,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		locationRepo: locationRepo,
		tokens:       tokens,
		warehouses:   warehouses,
		carts:        carts,
		notifier:     notifier,
		logger:       logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartSnapshot, error) {
	if input == nil || strings.TrimSpace(input.SKU) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("sku is required")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	record, err := effectiveLocation(ctx, srv.locationRepo)
	if err != nil {
		return nil, err
	}
	if record.IsNone() {
		return nil, domainerrors.ErrLocationRequired
	}

	warehouseID, err := srv.warehouseFor(ctx, record)
	if err != nil {
		return nil, err
	}

	cart, err := srv.carts.AddItem(ctx, service.AddCartItemRequest{
		SKU:         strings.TrimSpace(input.SKU),
		Quantity:    quantity,
		WarehouseID: warehouseID,
	})
	if err != nil {
		srv.log(ctx).Warn("Add to cart failed", slog.String("sku", input.SKU), slog.Any("error", err))
		srv.notifier.Error(ctx, userMessage(err, addItemFailedMessage))

		return nil, errors.Wrap(err, "failed to add item")
	}

	srv.log(ctx).Info("Item added to cart",
		slog.String("sku", input.SKU),
		slog.Int("quantity", quantity),
		slog.String("warehouse_id", warehouseID),
	)
	srv.notifier.Success(ctx, itemAddedMessage)

	return cart, nil
}

// warehouseFor prefers the cached id and resolves only on a miss.
func (srv *cartService) warehouseFor(ctx context.Context, record entity.LocationRecord) (string, error) {
	id, ok, err := srv.warehouses.CachedWarehouseID(ctx, record)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	resolved, err := srv.warehouses.Resolve(ctx, record)
	if err != nil {
		return "", err
	}

	return resolved.WarehouseID, nil
}

func (srv *cartService) GetCart(ctx context.Context) (*entity.CartSnapshot, error) {
	signedIn, err := srv.signedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !signedIn {
		return &entity.CartSnapshot{Items: []entity.CartItem{}}, nil
	}

	cart, err := srv.carts.GetCart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, itemID string) (*entity.CartSnapshot, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("item id is required")
	}

	if err := srv.carts.RemoveItem(ctx, itemID); err != nil {
		srv.log(ctx).Warn("Remove from cart failed", slog.String("item_id", itemID), slog.Any("error", err))
		srv.notifier.Error(ctx, removeFailedMessage)

		return nil, errors.Wrap(err, "failed to remove item")
	}

	srv.notifier.Info(ctx, itemRemovedMessage)

	cart, err := srv.carts.GetCart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}

func (srv *cartService) ClearCart(ctx context.Context) error {
	if err := srv.carts.ClearCart(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Info("Cart cleared")

	return nil
}

func (srv *cartService) ItemCount(ctx context.Context) (int, error) {
	cart, err := srv.GetCart(ctx)
	if err != nil {
		return 0, err
	}

	return cart.ItemCount(), nil
}

func (srv *cartService) signedIn(ctx context.Context) (bool, error) {
	tokens, err := srv.tokens.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load tokens")
	}

	return tokens != nil, nil
}

// userMessage returns the AppError message carried by err, else fallback.
func userMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return fallback
}
