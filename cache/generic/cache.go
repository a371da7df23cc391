package generic

import (
	"sync"
	"time"
)

type subscriber struct {
	callback       func(Element)
	observedHashes []interface{}

	m       sync.Mutex
	pending []Element
	signal  chan struct{}
}

type Outdating interface {
	Time() time.Time
}

// Element is a cached value. Elements with the same Hash replace each other.
// Generation orders writes from different producers.
type Element interface {
	Outdating
	Hash() interface{}
	Generation() uint64
}

type Cache struct {
	cache  map[interface{}]Element
	latest map[interface{}]uint64
	cm     *sync.RWMutex

	subscribers []*subscriber
	sm          *sync.RWMutex

	outdated  func(Element) bool
	monotonic bool
}

// NewCache returns a Cache for Elements. The Cache automatically deletes
// Elements, that are outdated. I.e. if outdated returns true for an Element,
// it is deleted. If monotonic is set, the Cache rejects Elements whose
// Generation is lower than the highest one accepted for the same Hash, even if
// that Element has since been deleted.
func NewCache(outdated func(Element) bool, monotonic bool) *Cache {
	if outdated == nil {
		outdated = func(Element) bool { return false }
	}
	return &Cache{
		cache:       make(map[interface{}]Element),
		latest:      make(map[interface{}]uint64),
		cm:          &sync.RWMutex{},
		sm:          &sync.RWMutex{},
		outdated:    outdated,
		monotonic:   monotonic,
	}
}

// Update caches e and notifies the subscribers. It returns false if e was
// rejected as stale.
func (c *Cache) Update(e Element) bool {
	h := e.Hash()

	c.cm.Lock()
	defer c.cm.Unlock()

	if c.monotonic && c.latest[h] > e.Generation() {
		return false
	}
	c.latest[h] = e.Generation()
	c.cache[h] = e

	for k, v := range c.cache {
		if c.outdated(v) {
			delete(c.cache, k)
		}
	}

	// subscribers are selected while the cache is locked, so a concurrent
	// Subscribe sees e either in its replay or here, never in both
	c.sm.RLock()
	for _, s := range c.subscribers {
		c.notify(e, s)
	}
	c.sm.RUnlock()
	return true
}

// Get returns the latest available value for hash, or nil if there is none or
// it is outdated.
func (c *Cache) Get(hash interface{}) Element {
	c.cm.RLock()
	defer c.cm.RUnlock()
	e, ok := c.cache[hash]
	if !ok || c.outdated(e) {
		return nil
	}
	return e
}

// Subscribe registers a callback to be called each time, when new input is
// cached and right after calling this function with the currently cached
// values. If observedHashes are given, the callback is only called for updates
// to one of those hashes. Each subscriber receives its elements in the order
// they were cached, on its own goroutine. A nil callback is ignored.
func (c *Cache) Subscribe(callback func(Element), observedHashes ...interface{}) {
	if callback == nil {
		return
	}

	s := &subscriber{
		callback:       callback,
		observedHashes: observedHashes,
		signal:         make(chan struct{}, 1),
	}
	go s.run()

	c.cm.RLock()
	defer c.cm.RUnlock()

	c.sm.Lock()
	c.subscribers = append(c.subscribers, s)
	c.sm.Unlock()

	for _, e := range c.cache {
		c.notify(e, s)
	}
}

// notify queues e for s if s observes it. The caller holds cm.
func (c *Cache) notify(e Element, s *subscriber) {
	if c.outdated(e) || !s.observes(e.Hash()) {
		return
	}
	s.push(e)
}

func (s *subscriber) observes(hash interface{}) bool {
	if len(s.observedHashes) == 0 {
		return true
	}
	for _, a := range s.observedHashes {
		if a == hash {
			return true
		}
	}
	return false
}

func (s *subscriber) push(e Element) {
	s.m.Lock()
	s.pending = append(s.pending, e)
	s.m.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	for range s.signal {
		s.m.Lock()
		pending := s.pending
		s.pending = nil
		s.m.Unlock()

		for _, e := range pending {
			s.callback(e)
		}
	}
}
