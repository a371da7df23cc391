package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theMomax/weatherboard/aggregator"
	"github.com/theMomax/weatherboard/cache/display"
	"github.com/theMomax/weatherboard/catalog"
	"github.com/theMomax/weatherboard/config"
	"github.com/theMomax/weatherboard/dashboard"
	"github.com/theMomax/weatherboard/feed"
	"github.com/theMomax/weatherboard/models/weather"
	"github.com/theMomax/weatherboard/render"
	"github.com/theMomax/weatherboard/scheduler"
	"github.com/theMomax/weatherboard/server"
	"github.com/theMomax/weatherboard/synthetic"
	utime "github.com/theMomax/weatherboard/utils/time"
)

func init() {
	config.RootCtx.Run = run
}

// Execute executes the root command.
func Execute() error {
	return config.RootCtx.Execute()
}

func run(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := weather.Location()

	board := display.NewBoard(config.Viper.GetBool(display.PathDiscardStale), config.NewComponentLogger("display"))

	agg := aggregator.New(
		feed.NewConfigured(nil),
		weather.DefaultEndpoints(),
		synthetic.New(nil, utime.Clock(), loc),
		config.NewComponentLogger("aggregator"),
	)

	dash := dashboard.New(
		agg,
		render.New(catalog.Default(), loc, config.NewComponentLogger("render")),
		board,
		config.NewComponentLogger("dashboard"),
	)

	sched := scheduler.New(dash, scheduler.Interval, config.NewComponentLogger("scheduler"))
	if err := sched.Start(); err != nil {
		log.WithError(err).Fatal("Could not start scheduler!")
	}
	defer sched.Stop()

	if err := server.Run(ctx, server.NewRouter(board, sched)); err != nil {
		log.WithError(err).Error("Server stopped unexpectedly!")
	}
}
