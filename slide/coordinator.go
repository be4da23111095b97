// Package slide sequences month transitions. A change request starts a
// slide; the new month is committed only when the presentation reports the
// slide finished, and requests arriving mid-slide are dropped.
package slide

import (
	"log/slog"

	"github.com/jask/slidecal/calendar"
)

// Phase is the coordinator state.
type Phase int

const (
	Idle Phase = iota
	Sliding
)

func (p Phase) String() string {
	if p == Sliding {
		return "sliding"
	}
	return "idle"
}

// Coordinator is the Idle/Sliding state machine for one widget instance.
// The zero value is an idle coordinator that logs nothing.
type Coordinator struct {
	phase   Phase
	pending calendar.Direction
	logger  *slog.Logger
}

func NewCoordinator(logger *slog.Logger) *Coordinator {
	return &Coordinator{logger: logger}
}

func (c *Coordinator) Phase() Phase { return c.phase }

// Pending is the direction of the slide in flight, or None when idle.
func (c *Coordinator) Pending() calendar.Direction { return c.pending }

// Request starts a slide in dir. It returns false, leaving state untouched,
// when a slide is already running or dir is None.
func (c *Coordinator) Request(dir calendar.Direction) bool {
	if dir.Step() == 0 {
		return false
	}
	if c.phase == Sliding {
		c.debug("slide request dropped", "requested", string(dir), "pending", string(c.pending))
		return false
	}
	c.phase = Sliding
	c.pending = dir
	c.debug("slide started", "direction", string(dir))
	return true
}

// Complete handles the completion signal. It returns the direction to
// commit and true the first time it is called for a slide; repeated
// signals return false.
func (c *Coordinator) Complete() (calendar.Direction, bool) {
	if c.phase != Sliding {
		c.debug("completion ignored while idle")
		return calendar.None, false
	}
	dir := c.pending
	c.phase = Idle
	c.pending = calendar.None
	c.debug("slide completed", "direction", string(dir))
	return dir, true
}

func (c *Coordinator) debug(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, args...)
}
