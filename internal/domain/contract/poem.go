package contract

import "context"

// PoemGenerator produces the celebratory poem for a birthday thread.
type PoemGenerator interface {
	// Generate never fails: on any upstream error it returns a static
	// fallback poem, so callers always receive literal text.
	Generate(ctx context.Context, descriptions []string) string
}
