package semantic

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context so the logging decorator can say what a
// request was for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose tag, or "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if s, ok := ctx.Value(purposeCtxKey).(string); ok {
		return s
	}
	return "unknown"
}
