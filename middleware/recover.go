package middleware

import (
	"fmt"

	"github.com/km-arc/go-inversify/container"
)

// Recover returns a middleware that converts a panic anywhere in the
// plan+resolve pass — typically a misbehaving factory or constructor —
// into an error on the triggering Get* call, so one bad binding cannot
// take the process down.
//
//	c.ApplyMiddleware(middleware.Recover())
func Recover() container.Middleware {
	return func(next container.Next) container.Next {
		return func(args container.NextArgs) (v any, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					v = nil
					err = fmt.Errorf("container: panic resolving %q: %v", args.ServiceIdentifier, rec)
				}
			}()
			return next(args)
		}
	}
}
