// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the rotconv tool. Library
// packages never log; only the CLI and the batch runner do.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadEncoding is returned for encodings other than "json" and "console".
var ErrBadEncoding = errors.New("logging: unknown encoding")

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// New returns a logger writing to stderr at the given level ("debug",
// "info", "warn", "error") in the given encoding.
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	switch encoding {
	case EncodingJSON, "":
		encoding = EncodingJSON
	case EncodingConsole:
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logging: %q: %w", encoding, ErrBadEncoding)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
