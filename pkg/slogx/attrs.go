// Package slogx carries small slog attribute helpers used across the module.
package slogx

import (
	"fmt"
	"log/slog"
)

// KeyLoggerName is the attribute key identifying which component logged.
const KeyLoggerName = "logger"

// Error returns a slog.Attr with key "error" and the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns a slog.Attr holding the string form of value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// LoggerName returns the component-name attribute under KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
