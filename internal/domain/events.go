package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryCommitted  EventType = "QueryCommitted"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchCleared   EventType = "SearchCleared"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryCommittedEvent is emitted when the debouncer's quiet interval elapses
// with no further edits. The query may be empty; downstream uses that to
// clear results.
type QueryCommittedEvent struct {
	Query string
}

func (e QueryCommittedEvent) Type() EventType { return EventQueryCommitted }

// SearchStartedEvent is emitted when a request is issued to the provider
type SearchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a request's response has been
// normalized and applied. Info carries the "no results" message for an
// empty list.
type SearchCompletedEvent struct {
	Query    string
	Keywords []Keyword
	Info     string
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a request ends in a transport or
// provider error
type SearchFailedEvent struct {
	Query   string
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchClearedEvent is emitted when an empty query resets the panel to idle
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Country string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted for failures outside a search cycle
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
