// Package logger configures the process wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/wnzid/SQLparser/pkg/config"
)

// lvlVar is a slog.LevelVar that can be used to get/set the minimal log level.
var lvlVar = &slog.LevelVar{}

// Init initializes a logger according to the configuration and sets it as
// the slog.Default().
func Init() {
	lc := config.Logger()

	lvlVar.Set(lc.Level)
	opts := &slog.HandlerOptions{
		AddSource: lc.AddSource,
		Level:     lvlVar,
	}

	var w io.Writer
	switch lc.OutputTo {
	case "stdout":
		w = os.Stdout
	case "discard":
		w = io.Discard
	default:
		w = os.Stderr
	}

	var handler slog.Handler
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// SetLevel sets the minimal log level at run time.
func SetLevel(l slog.Level) {
	lvlVar.Set(l)
}
