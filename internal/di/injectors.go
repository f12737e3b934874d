//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"github.com/lquan-tech/porfolio/internal"
	"github.com/lquan-tech/porfolio/internal/controllers"
	"github.com/lquan-tech/porfolio/internal/player"
	"github.com/lquan-tech/porfolio/internal/presence"
	"github.com/lquan-tech/porfolio/internal/providers"
	"github.com/lquan-tech/porfolio/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		presence.NewHTTPClient,
		presence.NewHub,
		wire.Bind(new(presence.Notifier), new(presence.HubInterface)),
		presence.NewPoller,

		player.NewClockOutput,
		player.NewController,

		controllers.NewPresenceController,
		controllers.NewPlayerController,
		controllers.NewContactController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
