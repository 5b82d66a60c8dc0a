package backend

import (
	"strconv"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"
	"quickdash/internal/util"
)

func unrecognized(what string) error {
	return domainerrors.ErrUnrecognizedResponse.WithDetails(what)
}

// toServiceability accepts {serviceable:true, warehouse:{id}} and {serviceable:false, message}.
// A flat warehouse_id is accepted as well. A serviceable answer without a warehouse
// id is passed through with an empty id.
func toServiceability(raw map[string]any) (*service.ServiceabilityResult, error) {
	serviceable, ok := util.Bool(raw["serviceable"])
	if !ok {
		return nil, unrecognized("find-serviceable: missing serviceable flag")
	}

	result := &service.ServiceabilityResult{
		Serviceable: serviceable,
		Message:     util.FirstString(raw, "message", "detail"),
	}
	if !serviceable {
		return result, nil
	}

	if warehouse, ok := raw["warehouse"].(map[string]any); ok {
		result.WarehouseID = util.FirstString(warehouse, "id", "warehouse_id")
	}
	if result.WarehouseID == "" {
		result.WarehouseID = util.FirstString(raw, "warehouse_id")
	}

	return result, nil
}

// toCart accepts the cart object, or an envelope carrying it under "cart".
func toCart(raw map[string]any) (*entity.CartSnapshot, error) {
	if nested, ok := raw["cart"].(map[string]any); ok {
		raw = nested
	}

	rawItems, ok := raw["items"]
	if !ok {
		return nil, unrecognized("cart: missing items")
	}

	list, ok := rawItems.([]any)
	if !ok && rawItems != nil {
		return nil, unrecognized("cart: items is not a list")
	}

	cart := &entity.CartSnapshot{
		Items:       make([]entity.CartItem, 0, len(list)),
		TotalAmount: util.Decimal(raw["total_amount"]),
	}

	for _, element := range list {
		item, ok := element.(map[string]any)
		if !ok {
			return nil, unrecognized("cart: item is not an object")
		}

		quantity := 0
		if q, ok := util.Float(item["quantity"]); ok {
			quantity = int(q)
		}

		cart.Items = append(cart.Items, entity.CartItem{
			ID:          util.FirstString(item, "id"),
			SKU:         util.FirstString(item, "sku", "sku_code"),
			ProductName: util.FirstString(item, "sku_name", "product_name", "name"),
			Quantity:    quantity,
			UnitPrice:   util.Decimal(item["unit_price"]),
			TotalPrice:  util.Decimal(item["total_price"]),
		})

		if cart.WarehouseID == "" {
			cart.WarehouseID = util.FirstString(item, "warehouse_id")
		}
	}

	if cart.TotalAmount.IsZero() {
		for _, item := range cart.Items {
			cart.TotalAmount = cart.TotalAmount.Add(item.TotalPrice)
		}
	}

	return cart, nil
}

// toCartValidation requires an is_valid flag; warehouse_id may be null.
func toCartValidation(raw map[string]any) (*entity.CartValidation, error) {
	valid, ok := util.Bool(raw["is_valid"])
	if !ok {
		return nil, unrecognized("validate-cart: missing is_valid")
	}

	validation := &entity.CartValidation{
		IsValid:     valid,
		WarehouseID: util.FirstString(raw, "warehouse_id"),
	}

	if list, ok := raw["unavailable_items"].([]any); ok {
		for _, element := range list {
			item, ok := element.(map[string]any)
			if !ok {
				continue
			}
			validation.UnavailableItems = append(validation.UnavailableItems, entity.UnavailableItem{
				SKU:         util.FirstString(item, "sku"),
				ProductName: util.FirstString(item, "product_name", "sku_name", "name"),
				Reason:      util.FirstString(item, "reason"),
			})
		}
	}

	return validation, nil
}

// toAddresses accepts a bare list or a paginated {results:[...]} envelope.
func toAddresses(body any) ([]*entity.CustomerAddress, error) {
	var list []any
	switch value := body.(type) {
	case []any:
		list = value
	case map[string]any:
		results, ok := value["results"].([]any)
		if !ok {
			return nil, unrecognized("addresses: object without results list")
		}
		list = results
	case nil:
		return []*entity.CustomerAddress{}, nil
	default:
		return nil, unrecognized("addresses: unexpected body")
	}

	addresses := make([]*entity.CustomerAddress, 0, len(list))
	for i, element := range list {
		raw, ok := element.(map[string]any)
		if !ok {
			return nil, unrecognized("addresses: element " + strconv.Itoa(i) + " is not an object")
		}

		address, err := entity.DecodeCustomerAddress(raw)
		if err != nil {
			return nil, unrecognized("addresses: " + err.Error())
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// toTokenPair accepts {access, refresh} at the top level or under "tokens".
func toTokenPair(raw map[string]any) (*entity.TokenPair, error) {
	if nested, ok := raw["tokens"].(map[string]any); ok {
		raw = nested
	}

	access := util.FirstString(raw, "access", "access_token")
	if access == "" {
		return nil, unrecognized("auth: missing access token")
	}

	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: util.FirstString(raw, "refresh", "refresh_token"),
	}, nil
}
