package service

import "context"

// Notifier surfaces non-blocking, toast-style messages to the user.
type Notifier interface {
	Success(ctx context.Context, message string)
	Info(ctx context.Context, message string)
	Warning(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
