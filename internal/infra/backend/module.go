package backend

import "go.uber.org/fx"

// Module provides the backend client and its gateways
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewWarehouseGateway,
		NewCartGateway,
		NewAddressGateway,
		NewAuthGateway,
	),
)
