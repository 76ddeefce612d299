package ui

import "kwscout/internal/eventbus"

// EventMsg wraps a forwarded domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
