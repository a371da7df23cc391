package feed

import (
	"net/http"

	"github.com/theMomax/weatherboard/config"
)

// Config paths
const (
	PathRateLimitRPS   = "fetch.ratelimit.rps"
	PathRateLimitBurst = "fetch.ratelimit.burst"
)

// UserAgent is sent with every feed request.
const UserAgent = config.ApplicationName + "/" + config.Version

func init() {
	config.RootCtx.PersistentFlags().Float64(PathRateLimitRPS, 5, "maximum outbound requests per second to the weather service")
	config.Viper.BindPFlag(PathRateLimitRPS, config.RootCtx.PersistentFlags().Lookup(PathRateLimitRPS))

	config.RootCtx.PersistentFlags().Int(PathRateLimitBurst, 6, "maximum burst of outbound requests to the weather service")
	config.Viper.BindPFlag(PathRateLimitBurst, config.RootCtx.PersistentFlags().Lookup(PathRateLimitBurst))

	config.OnInitialize(func() {
		if config.Viper.GetFloat64(PathRateLimitRPS) <= 0 {
			config.InvalidConfiguration(PathRateLimitRPS, "a positive number")
		}
		if config.Viper.GetInt(PathRateLimitBurst) < 1 {
			config.InvalidConfiguration(PathRateLimitBurst, "a positive integer")
		}
	})
}

// NewConfigured returns the HTTP fetcher, throttled as configured.
func NewConfigured(client *http.Client) *RateLimited {
	return NewRateLimited(
		NewHTTPFetcher(client, UserAgent),
		config.Viper.GetFloat64(PathRateLimitRPS),
		config.Viper.GetInt(PathRateLimitBurst),
	)
}
