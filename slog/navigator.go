// Package slog provides logging decorators for seoscan interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/seoscan/seoscan"
)

// Ensure LoggingNavigator implements seoscan.ElementSearcher.
var _ seoscan.ElementSearcher = (*LoggingNavigator)(nil)

// LoggingNavigator wraps an ElementSearcher with debug logging for
// element searches.
type LoggingNavigator struct {
	next   seoscan.ElementSearcher
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next seoscan.ElementSearcher, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Find delegates to the wrapped searcher and logs the operation.
func (n *LoggingNavigator) Find(q seoscan.Query) (el *seoscan.Element, err error) {
	defer func(begin time.Time) {
		n.logger.Info("element search",
			"query", q.String(),
			"found", err == nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Find(q)
}
