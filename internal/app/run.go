package app

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgerror"
)

// Run executes a single command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if a.cli == nil {
		slog.ErrorContext(ctx, "no module enabled", "module", "flight-search")
		return pkgerror.CodeInternal.ExitCode()
	}
	return a.cli.Run(ctx, args)
}

func (a *App) Stop(ctx context.Context) {
	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
