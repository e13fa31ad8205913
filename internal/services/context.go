package services

import "context"

type contextKey string

const (
	ruleKey      contextKey = "rule"
	fileKey      contextKey = "file"
	requestIDKey contextKey = "request_id"
)

// WithRule annotates context with the rule family being evaluated.
func WithRule(ctx context.Context, rule string) context.Context {
	if rule == "" {
		return ctx
	}
	return context.WithValue(ctx, ruleKey, rule)
}

// RuleFromContext returns the rule name if present.
func RuleFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(ruleKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithFile annotates context with the host's file reference.
func WithFile(ctx context.Context, file string) context.Context {
	if file == "" {
		return ctx
	}
	return context.WithValue(ctx, fileKey, file)
}

// FileFromContext returns the file reference if present.
func FileFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(fileKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
