package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/config"
	"github.com/theMomax/weatherboard/handlers"
	"github.com/theMomax/weatherboard/handlers/input/refresh"
	"github.com/theMomax/weatherboard/handlers/output/weather"
)

// Config paths
const (
	PathIP   = "server.ip"
	PathPort = "server.port"
)

// shutdownTimeout bounds how long in-flight requests may take on shutdown.
const shutdownTimeout = 5 * time.Second

func init() {
	config.RootCtx.PersistentFlags().StringP(PathIP, "a", "localhost", "server address")
	config.Viper.BindPFlag(PathIP, config.RootCtx.PersistentFlags().Lookup(PathIP))

	config.RootCtx.PersistentFlags().UintP(PathPort, "p", 8080, "server port")
	config.Viper.BindPFlag(PathPort, config.RootCtx.PersistentFlags().Lookup(PathPort))
}

// NewRouter returns the board's HTTP handler.
func NewRouter(source weather.Source, trigger refresh.Trigger) *gin.Engine {
	switch config.Env() {
	case config.Development:
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())

	r.Use(config.GinLogrusLogger())

	handlers.Register(&r.RouterGroup, source, trigger)

	return r
}

// Run serves handler on the configured address until ctx is done.
func Run(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:    config.Viper.GetString(PathIP) + ":" + config.Viper.GetString(PathPort),
		Handler: handler,
	}

	errs := make(chan error, 1)
	go func() {
		log.WithField("address", srv.Addr).Info("listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
