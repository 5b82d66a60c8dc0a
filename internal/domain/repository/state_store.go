// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"quickdash/internal/domain/entity"

	"github.com/pkg/errors"
)

// Persisted client state keys. Sessions sharing a store see each other's writes.
const (
	KeyBrowsingLatitude  = "app_lat"
	KeyBrowsingLongitude = "app_lng"
	KeyBrowsingLabel     = "app_address_text"
	KeyBrowsingCity      = "app_city"
	KeyBrowsingArea      = "app_area_label"
	KeyDeliveryAddressID = "app_address_id"
	KeyDeliveryContext   = "app_delivery_context"
	KeyWarehouseID       = "current_warehouse_id"
	KeyWarehouseKey      = "current_warehouse_key"
	KeyWarehouseAt       = "current_warehouse_at"
	KeyAccessToken       = "access_token"
	KeyRefreshToken      = "refresh_token"
	KeyAuthReloadLock    = "auth_reload_lock"
)

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("state store closed")

// StateStore is the durable key/value facility shared by every session of the same origin.
type StateStore interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// GetMany returns the existing values for keys; missing keys are absent from the map.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)

	// Set writes all values as one mutation.
	Set(ctx context.Context, values map[string]string) error

	// Delete removes keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Watch streams changes to any key until ctx is done.
	// Changes made through this store are delivered with Foreign=false.
	Watch(ctx context.Context) (<-chan entity.StorageChange, error)

	// SessionID identifies the writer behind this store handle.
	SessionID() string

	Close() error
}
