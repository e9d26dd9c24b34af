package container

// NextArgs is the request bundle every Get* call is reduced to before it
// reaches the middleware chain and, ultimately, the planner.
type NextArgs struct {
	ServiceIdentifier string
	Multi             bool
	Tags              map[string]string

	// AvoidConstraints bypasses tag filtering; set only by the
	// internal existence probes.
	AvoidConstraints bool
}

// Next is the plan+resolve terminal function (or a middleware-wrapped
// version of it).
type Next func(args NextArgs) (any, error)

// Middleware wraps the plan+resolve terminal. Middlewares are composed
// right-to-left, so the first middleware passed to ApplyMiddleware is
// the outermost: it sees the request first and the result last.
//
//	// InversifyJS: container.applyMiddleware(logger)
//	c.ApplyMiddleware(middleware.Logging(log))
type Middleware func(next Next) Next

// composeMiddleware builds the chain for the installed middlewares over
// the terminal function.
func composeMiddleware(middlewares []Middleware, terminal Next) Next {
	next := terminal
	for i := len(middlewares) - 1; i >= 0; i-- {
		next = middlewares[i](next)
	}
	return next
}
