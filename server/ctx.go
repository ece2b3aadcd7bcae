package server

import "context"

type contextKey string

const KRequestID contextKey = "request-id" // for assigning request id to context

// RequestID from a handler's context, "" if unset.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(KRequestID).(string); ok {
		return v
	}
	return ""
}
