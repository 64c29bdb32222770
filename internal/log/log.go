// Package log provides the slog loggers used by the deque.
package log

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(t reflect.Type) slog.Value {
		return slog.GroupValue(
			slog.String("name", t.String()),
			slog.String("kind", t.Kind().String()),
		)
	}),
)

// Def is a default logger. It drops debug records such as growth events.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger that shows debug records.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// Wrap returns a logger that writes to h through the same formatters
// as [Def] and [Dev].
func Wrap(h slog.Handler) *slog.Logger { return slog.New(newHandler(h)) }

// TypeOf returns the element type of T for the "elem_type" attribute.
func TypeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }
