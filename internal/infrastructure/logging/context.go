package logging

import (
	"context"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

// EnsureCorrelationID returns ctx carrying a correlation id, generating one
// when ctx has none, together with the id in use.
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		return ctx, id
	}
	id := ports.GenerateCorrelationID()
	return ports.WithCorrelationID(ctx, id), id
}
