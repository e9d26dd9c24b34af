// Package middleware provides ready-made resolution middleware for the
// container: structured logging and panic recovery.
package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-inversify/container"
)

// Logging returns a middleware that logs one entry per Get-style call:
// service identifier, multiplicity, duration, and outcome. Successful
// resolutions log at debug level, failures at warn.
//
//	log, _ := zap.NewDevelopment()
//	c.ApplyMiddleware(middleware.Logging(log))
func Logging(log *zap.Logger) container.Middleware {
	return func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			start := time.Now()
			v, err := next(args)

			fields := []zap.Field{
				zap.String("service", args.ServiceIdentifier),
				zap.Bool("multi", args.Multi),
				zap.Duration("took", time.Since(start)),
			}
			if name, ok := args.Tags[container.NamedTag]; ok {
				fields = append(fields, zap.String("named", name))
			}

			if err != nil {
				log.Warn("resolution failed", append(fields, zap.Error(err))...)
			} else {
				log.Debug("resolved", fields...)
			}
			return v, err
		}
	}
}
