// Package display holds what the weather board currently shows.
package display

import (
	"html"
	"strings"
	"sync/atomic"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/cache/generic"
	"github.com/theMomax/weatherboard/config"
	"github.com/theMomax/weatherboard/render"
	"github.com/theMomax/weatherboard/utils/metadata"
	utime "github.com/theMomax/weatherboard/utils/time"
)

// Config paths
const (
	PathDiscardStale = "display.discardstale"
)

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 3 * time.Second

const maxDetail = 280

// Sections besides the rendered ones.
const (
	SectionNotification = "notification"
	SectionCycle        = "cycle"
)

func init() {
	config.RootCtx.PersistentFlags().Bool(PathDiscardStale, true, "ignore display updates from superseded refresh cycles (false: last write wins)")
	config.Viper.BindPFlag(PathDiscardStale, config.RootCtx.PersistentFlags().Lookup(PathDiscardStale))
}

// Notification is a transient message shown on top of the board.
type Notification struct {
	Message string `json:"message"`
	// Detail is the plain-text cause of an error, if any.
	Detail string    `json:"detail,omitempty"`
	Error  bool      `json:"error"`
	Posted time.Time `json:"posted"`
}

// Snapshot is a consistent copy of the board's state.
type Snapshot struct {
	Current      *render.CurrentView `json:"current"`
	Hourly       []render.HourView   `json:"hourly"`
	Daily        []render.DayView    `json:"daily"`
	Notification *Notification       `json:"notification"`
	Loading      bool                `json:"loading"`
	Cycle        *metadata.Cycle     `json:"cycle"`
}

type entry struct {
	section string
	gen     uint64
	at      time.Time
	value   interface{}
}

func (e *entry) Hash() interface{}  { return e.section }
func (e *entry) Generation() uint64 { return e.gen }
func (e *entry) Time() time.Time    { return e.at }

// Board is a render.Target. Each section keeps the value of the latest
// refresh cycle that wrote it. Sections never written stay empty.
type Board struct {
	cache   *generic.Cache
	policy  *bluemonday.Policy
	loading int32
	log     *logrus.Entry
}

var _ render.Target = (*Board)(nil)

// NewBoard returns an empty Board. If discardStale is set, writes from a cycle
// older than the one a section already shows are dropped.
func NewBoard(discardStale bool, log *logrus.Entry) *Board {
	b := &Board{
		policy: bluemonday.StrictPolicy(),
		log:    log,
	}
	b.cache = generic.NewCache(outdated, discardStale)
	b.cache.Subscribe(func(e generic.Element) {
		b.log.WithFields(logrus.Fields{
			"section":    e.Hash(),
			"generation": e.Generation(),
		}).Debug("display updated")
	})
	return b
}

func outdated(e generic.Element) bool {
	return e.Hash() == SectionNotification && utime.Since(e.Time()) >= NotificationTTL
}

func (b *Board) set(section string, gen uint64, value interface{}) {
	if !b.cache.Update(&entry{section: section, gen: gen, at: utime.Now(), value: value}) {
		b.log.WithFields(logrus.Fields{
			"section":    section,
			"generation": gen,
		}).Debug("discarding update from superseded cycle")
	}
}

func (b *Board) get(section string) interface{} {
	e := b.cache.Get(section)
	if e == nil {
		return nil
	}
	return e.(*entry).value
}

// SetCurrent implements render.Target.
func (b *Board) SetCurrent(gen uint64, v render.CurrentView) {
	b.set(render.SectionCurrent, gen, v)
}

// SetHourly implements render.Target.
func (b *Board) SetHourly(gen uint64, v []render.HourView) {
	b.set(render.SectionHourly, gen, v)
}

// SetDaily implements render.Target.
func (b *Board) SetDaily(gen uint64, v []render.DayView) {
	b.set(render.SectionDaily, gen, v)
}

// SetCycle records the cycle that last wrote to the board.
func (b *Board) SetCycle(c metadata.Cycle) {
	b.set(SectionCycle, c.Generation, c)
}

// Notify replaces the current notification.
func (b *Board) Notify(gen uint64, message string, isError bool) {
	b.set(SectionNotification, gen, Notification{
		Message: message,
		Error:   isError,
		Posted:  utime.Now(),
	})
}

// NotifyError replaces the current notification with an error notification.
// The cause may quote upstream responses; its markup is stripped and it is
// shortened to maxDetail runes.
func (b *Board) NotifyError(gen uint64, message string, cause error) {
	n := Notification{
		Message: message,
		Error:   true,
		Posted:  utime.Now(),
	}
	if cause != nil {
		n.Detail = b.clean(cause.Error())
	}
	b.set(SectionNotification, gen, n)
}

func (b *Board) clean(text string) string {
	text = strings.Join(strings.Fields(html.UnescapeString(b.policy.Sanitize(text))), " ")
	if r := []rune(text); len(r) > maxDetail {
		text = string(r[:maxDetail]) + "…"
	}
	return text
}

// BeginLoading marks a cycle as in flight. Every call must be matched by
// EndLoading.
func (b *Board) BeginLoading() {
	atomic.AddInt32(&b.loading, 1)
}

// EndLoading marks a cycle as done.
func (b *Board) EndLoading() {
	atomic.AddInt32(&b.loading, -1)
}

// Loading reports whether any cycle is in flight.
func (b *Board) Loading() bool {
	return atomic.LoadInt32(&b.loading) > 0
}

// Snapshot returns the board's state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Loading: b.Loading(),
	}
	if v, ok := b.get(render.SectionCurrent).(render.CurrentView); ok {
		s.Current = &v
	}
	if v, ok := b.get(render.SectionHourly).([]render.HourView); ok {
		s.Hourly = v
	}
	if v, ok := b.get(render.SectionDaily).([]render.DayView); ok {
		s.Daily = v
	}
	if v, ok := b.get(SectionNotification).(Notification); ok {
		s.Notification = &v
	}
	if v, ok := b.get(SectionCycle).(metadata.Cycle); ok {
		s.Cycle = &v
	}
	return s
}
