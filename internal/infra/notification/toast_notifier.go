// Package notification delivers user-facing toast messages.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Level is the toast severity
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const defaultCapacity = 20

// Toast is a delivered notification
type Toast struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ToastNotifier logs every toast and keeps the most recent ones for UI collaborators to poll.
type ToastNotifier struct {
	logger   *slog.Logger
	capacity int

	mu     sync.Mutex
	toasts []Toast
}

// NewToastNotifier is the constructor for ToastNotifier.
func NewToastNotifier(logger *slog.Logger) *ToastNotifier {
	return &ToastNotifier{
		logger:   logger,
		capacity: defaultCapacity,
	}
}

func (n *ToastNotifier) Success(ctx context.Context, message string) {
	n.push(ctx, LevelSuccess, message)
}

func (n *ToastNotifier) Info(ctx context.Context, message string) {
	n.push(ctx, LevelInfo, message)
}

func (n *ToastNotifier) Warning(ctx context.Context, message string) {
	n.push(ctx, LevelWarning, message)
}

func (n *ToastNotifier) Error(ctx context.Context, message string) {
	n.push(ctx, LevelError, message)
}

// Recent returns the buffered toasts, oldest first.
func (n *ToastNotifier) Recent() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Toast, len(n.toasts))
	copy(out, n.toasts)

	return out
}

func (n *ToastNotifier) push(ctx context.Context, level Level, message string) {
	logLevel := slog.LevelInfo
	switch level {
	case LevelWarning:
		logLevel = slog.LevelWarn
	case LevelError:
		logLevel = slog.LevelError
	}
	n.logger.Log(ctx, logLevel, "Toast", slog.String("level", string(level)), slog.String("message", message))

	n.mu.Lock()
	defer n.mu.Unlock()

	n.toasts = append(n.toasts, Toast{Level: level, Message: message, At: time.Now()})
	if len(n.toasts) > n.capacity {
		n.toasts = n.toasts[len(n.toasts)-n.capacity:]
	}
}
