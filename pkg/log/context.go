package log

import "context"

// RequestIDKey is the context key under which the HTTP layer stores the request id.
type RequestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id; every log line written with it is tagged.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, id)
}
