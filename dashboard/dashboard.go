// Package dashboard runs refresh cycles: fetch, render, notify.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/aggregator"
	"github.com/theMomax/weatherboard/feed"
	"github.com/theMomax/weatherboard/render"
	"github.com/theMomax/weatherboard/utils/metadata"
	"github.com/theMomax/weatherboard/utils/synchronization"
	utime "github.com/theMomax/weatherboard/utils/time"
)

// Notification messages
const (
	MessageSuccess = "Weather data updated successfully! 🇹🇭"
	MessageFailure = "Error updating weather data. Please try again."
)

// Refresher produces the documents of one cycle. The returned bundle is never
// nil, also if an error is returned.
type Refresher interface {
	Refresh(ctx context.Context) (*aggregator.Bundle, error)
}

// Board is where a cycle's results end up.
type Board interface {
	render.Target
	Notify(gen uint64, message string, isError bool)
	NotifyError(gen uint64, message string, cause error)
	SetCycle(c metadata.Cycle)
	BeginLoading()
	EndLoading()
}

// Dashboard ties a Refresher to a Board.
type Dashboard struct {
	refresher   Refresher
	renderer    *render.Renderer
	board       Board
	generations synchronization.Counter
	log         *logrus.Entry
}

// New returns a Dashboard.
func New(refresher Refresher, renderer *render.Renderer, board Board, log *logrus.Entry) *Dashboard {
	return &Dashboard{
		refresher: refresher,
		renderer:  renderer,
		board:     board,
		log:       log,
	}
}

// Load runs one refresh cycle and returns its description. Cycles may overlap;
// each takes a new generation when it starts. Load does not fail: feed errors
// result in synthetic data and an error notification, and sections whose
// document is malformed keep their previous content.
func (d *Dashboard) Load(ctx context.Context, trigger metadata.Trigger) *metadata.Cycle {
	cycle := metadata.NewCycle(d.generations.Next(), trigger, utime.Now())
	log := d.log.WithFields(cycle.Fields())

	d.board.BeginLoading()
	defer d.board.EndLoading()
	log.Debug("refresh started")

	bundle, err := d.refresher.Refresh(ctx)
	cycle.Synthetic = bundle.Synthetic

	gen := cycle.Generation
	// shape errors are logged by the renderer and affect only their section
	_ = d.renderer.Current(d.board, gen, bundle.Current)
	_ = d.renderer.Hourly(d.board, gen, bundle.Hourly)
	_ = d.renderer.Daily(d.board, gen, bundle.Daily)

	if err != nil {
		log.WithError(err).Warn("refresh failed, showing synthetic data")
		d.board.NotifyError(gen, MessageFailure, errors.New(strings.Join(describe(err), "; ")))
	} else {
		d.board.Notify(gen, MessageSuccess, false)
	}

	cycle.Finished = utime.Now()
	d.board.SetCycle(*cycle)

	log.WithFields(logrus.Fields{
		"synthetic": cycle.Synthetic,
		"duration":  cycle.Finished.Sub(cycle.Started),
	}).Info("refresh finished")
	return cycle
}

// describe lists the feed failures in err without their endpoints, which are
// the same for every cycle.
func describe(err error) []string {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var out []string
		for _, inner := range e.Unwrap() {
			out = append(out, describe(inner)...)
		}
		return out
	case *feed.TransportError:
		if e.StatusCode != 0 {
			return []string{fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)}
		}
		if e.Err != nil {
			return []string{e.Err.Error()}
		}
	case *feed.DecodeError:
		return []string{"malformed response: " + e.Err.Error()}
	}
	if inner := errors.Unwrap(err); inner != nil {
		return describe(inner)
	}
	return []string{err.Error()}
}
