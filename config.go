package silo

import "go.uber.org/zap"

// Config holds global, process-scoped configuration for the silo package,
// the way the teacher's table-backed config.go holds a single package-level
// Config for table event callbacks. Store reads the event hooks on every
// mutating call that fires one, and World.Tick reads the logger at the start
// of every tick; callers who never touch Config get no hooks and a no-op
// logger.
var Config config = config{
	logger: zap.NewNop(),
}

type config struct {
	events Events
	logger *zap.Logger
}

// Events are optional hooks fired synchronously from the mutating call that
// triggered them. All fields are nil-safe; unset hooks are skipped.
type Events struct {
	OnEntityCreated   func(Handle)
	OnEntityRemoved   func(Handle)
	OnComponentAdded  func(Handle, string)
	OnComponentRemoved func(Handle, string)
}

// SetEvents installs the package-wide entity/component lifecycle hooks.
func (c *config) SetEvents(e Events) {
	c.events = e
}

// SetLogger installs the *zap.Logger used for World tick/phase
// instrumentation. Passing nil restores the no-op logger.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}
