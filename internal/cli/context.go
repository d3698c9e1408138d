package cli

import (
	"context"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/testutil"
)

// GetCLIFromContext returns a CLI around the App injected by tests, or boots
// a fresh one from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp}, nil
	}
	return NewCLI(ctx)
}
