package logger

import "context"

type buildIDKey struct{}

// WithBuildID tags ctx so that every line logged with it carries build_id.
func WithBuildID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, buildIDKey{}, id)
}

// BuildID returns the build ID stored in ctx, if any.
func BuildID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(buildIDKey{}).(string)
	return id
}
