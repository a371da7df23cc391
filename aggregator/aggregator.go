// Package aggregator retrieves the three weather feeds of one refresh cycle.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/feed"
	"github.com/theMomax/weatherboard/models/weather"
	"github.com/theMomax/weatherboard/synthetic"
)

// Bundle holds the documents of one refresh cycle. Either all three are live
// or all three are synthetic.
type Bundle struct {
	Current   *weather.CurrentDocument
	Hourly    *weather.HourlyDocument
	Daily     *weather.DailyDocument
	Synthetic bool
}

// Fallback produces synthetic documents. *synthetic.Generator implements it.
type Fallback interface {
	Current() *weather.CurrentDocument
	Hourly(count int) *weather.HourlyDocument
	Daily(count int) *weather.DailyDocument
}

var _ Fallback = (*synthetic.Generator)(nil)

// Aggregator fans out to the three feed endpoints and joins the results.
type Aggregator struct {
	fetcher   feed.Fetcher
	endpoints weather.Endpoints
	fallback  Fallback
	log       *logrus.Entry
}

// New creates an Aggregator.
func New(fetcher feed.Fetcher, endpoints weather.Endpoints, fallback Fallback, log *logrus.Entry) *Aggregator {
	return &Aggregator{
		fetcher:   fetcher,
		endpoints: endpoints,
		fallback:  fallback,
		log:       log,
	}
}

// Refresh fetches all three feeds concurrently and waits for every one of them
// to finish. If any fetch failed, the returned Bundle is entirely synthetic and
// the error joins all failures. The Bundle is never nil.
func (a *Aggregator) Refresh(ctx context.Context) (*Bundle, error) {
	var (
		current weather.CurrentDocument
		hourly  weather.HourlyDocument
		daily   weather.DailyDocument
		errs    [3]error
		wg      sync.WaitGroup
	)

	fetch := func(i int, endpoint string, out interface{}) {
		defer wg.Done()
		errs[i] = a.fetcher.Fetch(ctx, endpoint, out)
	}

	wg.Add(3)
	go fetch(0, a.endpoints.Current, &current)
	go fetch(1, a.endpoints.Hourly, &hourly)
	go fetch(2, a.endpoints.Daily, &daily)
	wg.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		a.log.WithError(err).Warn("weather feeds unavailable, substituting synthetic data")
		return a.synthesize(), fmt.Errorf("refresh failed: %w", err)
	}

	a.log.Debug("fetched all weather feeds")
	return &Bundle{
		Current: &current,
		Hourly:  &hourly,
		Daily:   &daily,
	}, nil
}

func (a *Aggregator) synthesize() *Bundle {
	return &Bundle{
		Current:   a.fallback.Current(),
		Hourly:    a.fallback.Hourly(synthetic.HourlyCount),
		Daily:     a.fallback.Daily(synthetic.DailyCount),
		Synthetic: true,
	}
}
