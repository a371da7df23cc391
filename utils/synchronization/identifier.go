package synchronization

import "sync"

// Counter hands out identifiers that are ordered by the time of the call. The
// first identifier is 1, so 0 can mean "nothing yet".
type Counter struct {
	m    sync.Mutex
	last uint64
}

// AttachID provides the idconsumer with a unique identifier, that is guaranteed
// to be ordered by time of the call to this function. idconsumer runs while
// the counter is locked.
func (c *Counter) AttachID(idconsumer func(id uint64)) {
	c.m.Lock()
	c.last++
	idconsumer(c.last)
	c.m.Unlock()
}

// Next returns a new identifier.
func (c *Counter) Next() (id uint64) {
	c.AttachID(func(i uint64) {
		id = i
	})
	return id
}
