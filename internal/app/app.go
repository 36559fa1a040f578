package app

import (
	"context"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/inbound"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkglog"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkguid"
)

type App struct {
	config   pkgconfig.Config
	uuid     pkguid.StringID
	cli      *inbound.CLIEndpoint
	closerFn map[string]func(context.Context) error
}

func New() *App {
	app := &App{}
	pkglog.InitLogging()
	app.initConfig()
	app.initModules()
	app.initClosers()
	return app
}
