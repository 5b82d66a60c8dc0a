package kv

import "go.uber.org/fx"

// Module provides the StateStore-backed repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLocationRepository,
		NewWarehouseCache,
		NewTokenRepository,
	),
)
