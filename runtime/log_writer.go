package runtime

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// storageLogWriter redirects badger's own logging to the application's
// slog.Logger, tagged with the store it comes from.
type storageLogWriter struct {
	logger *slog.Logger
	store  string
}

func NewStorageLogger(logger *slog.Logger, store string) badger.Logger {
	return &storageLogWriter{logger: logger, store: store}
}

func (w *storageLogWriter) Errorf(format string, args ...any) {
	w.logger.Error(w.message(format, args), "store", w.store)
}

func (w *storageLogWriter) Warningf(format string, args ...any) {
	w.logger.Warn(w.message(format, args), "store", w.store)
}

func (w *storageLogWriter) Infof(format string, args ...any) {
	w.logger.Info(w.message(format, args), "store", w.store)
}

func (w *storageLogWriter) Debugf(format string, args ...any) {
	w.logger.Debug(w.message(format, args), "store", w.store)
}

// badger ends most lines with a newline
func (w *storageLogWriter) message(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
