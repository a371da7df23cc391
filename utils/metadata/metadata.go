package metadata

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Trigger names what started a refresh cycle.
type Trigger string

// Triggers
const (
	Initial  Trigger = "initial"
	Manual   Trigger = "manual"
	Periodic Trigger = "periodic"
)

// Cycle describes one refresh cycle.
type Cycle struct {
	// Generation orders cycles by start time. The latest cycle has the highest
	// Generation.
	Generation uint64    `json:"generation"`
	UUID       uuid.UUID `json:"uuid"`
	Trigger    Trigger   `json:"trigger"`
	Started    time.Time `json:"started"`
	// Finished is zero while the cycle is running.
	Finished  time.Time `json:"finished"`
	Synthetic bool      `json:"synthetic"`
}

// NewCycle returns a started Cycle with a random UUID.
func NewCycle(generation uint64, trigger Trigger, started time.Time) *Cycle {
	return &Cycle{
		Generation: generation,
		UUID:       uuid.New(),
		Trigger:    trigger,
		Started:    started,
	}
}

// Fields returns log fields identifying the cycle.
func (c *Cycle) Fields() logrus.Fields {
	return logrus.Fields{
		"generation": c.Generation,
		"cycle":      c.UUID.String(),
		"trigger":    c.Trigger,
	}
}
