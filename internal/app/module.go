package app

import (
	"log/slog"
	"os"

	fs "github.com/shandysiswandi/goskiplagged/internal/flightsearch"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.flight-search.enabled") {
		return
	}

	cli, err := fs.New(fs.Dependency{
		Config: a.config,
		UID:    a.uuid,
		Out:    os.Stdout,
	})
	if err != nil {
		slog.Error("failed to init module flight-search", "error", err)
		os.Exit(1)
	}
	a.cli = cli
}
