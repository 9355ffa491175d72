package runtime

import (
	"context"
	"net/http"
)

// Middleware enforces runtime limits on HTTP requests using the Controller.
// It bounds global concurrency and applies an operation timeout to each
// request.
type Middleware struct {
	ctrl *Controller
}

// NewMiddleware constructs a Middleware bound to the provided Controller.
func NewMiddleware(ctrl *Controller) *Middleware {
	return &Middleware{ctrl: ctrl}
}

// Handler acquires a request slot with a bounded wait, applies the
// operation timeout, and guarantees release. Saturation answers 503 so
// clients can retry shortly.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acquireCtx := r.Context()
		if m.ctrl.limits.AcquireRequestTimeout > 0 {
			var cancel context.CancelFunc
			acquireCtx, cancel = context.WithTimeout(acquireCtx, m.ctrl.limits.AcquireRequestTimeout)
			defer cancel()
		}
		if err := m.ctrl.AcquireRequest(acquireCtx); err != nil {
			http.Error(w, "concurrent request limit reached, retry shortly", http.StatusServiceUnavailable)
			return
		}
		defer m.ctrl.ReleaseRequest()

		ctx := r.Context()
		cancel := func() {}
		if m.ctrl.limits.OperationTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, m.ctrl.limits.OperationTimeout)
		}
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
