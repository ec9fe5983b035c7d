package ecs

// System represents a behavior that runs once per tick.
// Systems can include Singleton fields, which the Scheduler binds on
// registration, as well as custom state fields that persist between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
