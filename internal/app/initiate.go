package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkguid"
)

var defaults = map[string]any{
	"modules.flight-search.enabled":               true,
	"modules.flight-search.provider.base_url":     "https://skiplagged.com",
	"modules.flight-search.provider.timeout":      "10s",
	"modules.flight-search.provider.rate_limit":   "1s",
	"modules.flight-search.provider.user_agent":   "goskiplagged/1.0",
	"modules.flight-search.duration.mode":         "zoned",
	"modules.flight-search.duration.fixed_zone":   "America/New_York",
	"modules.flight-search.search.local_sort":     false,
	"modules.flight-search.airports.skip_unknown": false,
}

func (a *App) initConfig() {
	path := "./config/config.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}

	cfg, err := pkgconfig.NewViper(path, defaults)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.config = cfg
	a.uuid = pkguid.NewUUID()
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
