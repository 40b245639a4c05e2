/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package xlog builds the slog loggers used by enumgen: zerolog does the
// writing, slog is the API the rest of the module logs through.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized level names.
var ErrUnknownLevel = errors.New("xlog: unknown level")

// ErrUnknownFormat is returned by New for unrecognized output formats.
var ErrUnknownFormat = errors.New("xlog: unknown format")

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a slog
// level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// New returns a logger writing to w at the given level. Format "text"
// renders human readable lines, "json" one zerolog object per record.
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	var out io.Writer
	switch strings.ToLower(format) {
	case "", FormatText:
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	case FormatJSON:
		out = w
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	return slog.New(slogzerolog.Option{
		Level:  level,
		Logger: &zl,
	}.NewZerologHandler()), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	zl := zerolog.Nop()
	return slog.New(slogzerolog.Option{
		Level:  slog.LevelError + 1,
		Logger: &zl,
	}.NewZerologHandler())
}

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
