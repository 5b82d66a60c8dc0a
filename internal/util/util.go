package util

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// String coerces a loosely typed JSON value (string or number) to a string.
// Empty strings and nil report false.
func String(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		value = strings.TrimSpace(value)

		return value, value != ""
	case json.Number:
		return value.String(), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	default:
		return "", false
	}
}

// Float coerces a JSON number or numeric string to a finite float64.
func Float(v any) (float64, bool) {
	var f float64
	var err error

	switch value := v.(type) {
	case float64:
		f = value
	case json.Number:
		f, err = value.Float64()
	case string:
		if strings.TrimSpace(value) == "" {
			return 0, false
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
	case int:
		f = float64(value)
	case int64:
		f = float64(value)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// Decimal coerces a JSON number or numeric string to a decimal. Unparseable values are zero.
func Decimal(v any) decimal.Decimal {
	s, ok := String(v)
	if !ok {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Bool coerces JSON booleans and the strings "true"/"false".
func Bool(v any) (bool, bool) {
	switch value := v.(type) {
	case bool:
		return value, true
	case string:
		b, err := strconv.ParseBool(value)

		return b, err == nil
	default:
		return false, false
	}
}

// FirstString returns the first key of raw holding a usable string.
func FirstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := String(raw[key]); ok {
			return s
		}
	}

	return ""
}

// FirstFloat returns the first key of raw holding a usable number.
func FirstFloat(raw map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := Float(raw[key]); ok {
			return f, true
		}
	}

	return 0, false
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
