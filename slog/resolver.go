// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kiosque/kiosque"
)

// Ensure LoggingResolver implements kiosque.Resolver.
var _ kiosque.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   kiosque.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next kiosque.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(ctx context.Context, urlOrAlias string) (site kiosque.Site, err error) {
	defer func(begin time.Time) {
		name := ""
		if site != nil {
			name = site.Name()
		}
		r.logger.Debug("resolve",
			"input", urlOrAlias,
			"handler", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, urlOrAlias)
}
