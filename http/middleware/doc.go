/*
The middleware package defines what a middleware is in switchback and a set of basic middlewares.

The available middlewares are:
- BearerAuth
- InjectIPAddress
- LogRequest
- RateLimit
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	mws := []middleware.Middleware{
		middleware.RateLimit(vs),
		middleware.RequestID(switchback.RequestIDKey),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
	}
*/
package middleware
