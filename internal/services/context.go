package services

import "context"

type contextKey string

const (
	runIDKey    contextKey = "run_id"
	languageKey contextKey = "language"
)

// WithRunID annotates context with the per-invocation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the per-invocation identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithLanguage annotates context with the language identifier being loaded.
// The value is stored exactly as given.
func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, languageKey, language)
}

// LanguageFromContext returns the language identifier if present.
func LanguageFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(languageKey).(string)
	return v, ok
}
