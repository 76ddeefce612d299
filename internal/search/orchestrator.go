package search

import (
	"context"
	"log"
	"strings"
	"sync"

	"kwscout/internal/config"
	"kwscout/internal/domain"
	"kwscout/internal/eventbus"
	"kwscout/internal/provider"
)

// NoResultsMessage is the informational message shown alongside an empty
// loaded result set. An empty set is not an error, but it still has to say so.
const NoResultsMessage = "no results"

// Provider is the outbound dependency of the orchestrator
type Provider interface {
	Suggest(ctx context.Context, keyword, country string) (*provider.Payload, error)
}

// Orchestrator owns the search state machine. Every issued request carries a
// sequence tag; a response only applies when its tag still matches the most
// recently issued one, so stale responses can never overwrite newer state.
type Orchestrator struct {
	mu    sync.Mutex
	seq   uint64
	state domain.SearchState

	provider Provider
	bus      eventbus.EventBus
	creds    config.Credentials
	country  string
}

// NewOrchestrator creates an orchestrator with an injected credential.
// A missing credential permanently disables search (see Disabled).
func NewOrchestrator(p Provider, bus eventbus.EventBus, creds config.Credentials, country string) *Orchestrator {
	if country == "" {
		country = config.DefaultCountry
	}
	return &Orchestrator{
		state:    domain.SearchState{Phase: domain.PhaseIdle},
		provider: p,
		bus:      bus,
		creds:    creds,
		country:  country,
	}
}

// Disabled reports the permanent configuration error condition. The UI
// disables input entirely rather than showing a retryable error.
func (o *Orchestrator) Disabled() bool {
	return o.creds.Missing()
}

// State returns a copy of the current search state
func (o *Orchestrator) State() domain.SearchState {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.state
	if st.Keywords != nil {
		st.Keywords = append([]domain.Keyword(nil), st.Keywords...)
	}
	return st
}

// Search runs one search cycle for a committed or submitted query.
//
// An empty (after trimming) query resets the panel to idle without a network
// call. A missing credential fails fast before any network call. Otherwise
// exactly one request is issued and the fetch runs on its own goroutine; the
// caller is never blocked on the network.
func (o *Orchestrator) Search(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		o.mu.Lock()
		o.seq++ // supersede any in-flight request
		o.state = domain.SearchState{Phase: domain.PhaseIdle}
		o.bus.Publish(eventbus.SearchClearedEvent{})
		o.mu.Unlock()
		return
	}

	if err := o.creds.Validate(); err != nil {
		log.Printf("Search refused: %v", err)
		o.bus.Publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
		return
	}

	o.mu.Lock()
	o.seq++
	tag := o.seq
	o.state = domain.SearchState{Phase: domain.PhaseLoading}
	o.bus.Publish(eventbus.SearchStartedEvent{Query: query, Seq: tag})
	o.mu.Unlock()

	go o.run(ctx, tag, query)
}

// run fetches and normalizes one response. Every failure is converted into
// the error state; nothing escapes the search cycle.
func (o *Orchestrator) run(ctx context.Context, tag uint64, query string) {
	payload, err := o.provider.Suggest(ctx, query, o.country)
	if err != nil {
		o.apply(tag, query, domain.SearchState{
			Phase:   domain.PhaseError,
			Message: err.Error(),
		})
		return
	}

	keywords := Normalize(payload)
	st := domain.SearchState{Phase: domain.PhaseLoaded, Keywords: keywords}
	if len(keywords) == 0 {
		st.Info = NoResultsMessage
	}
	o.apply(tag, query, st)
}

// apply installs a response's state transition if its tag still matches the
// most recently issued request; otherwise the response is dropped silently.
// The matching event publishes under the same lock so subscribers observe
// transitions in the order they happened.
func (o *Orchestrator) apply(tag uint64, query string, st domain.SearchState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if tag != o.seq {
		log.Printf("Dropping stale response for %q (tag %d, latest %d)", query, tag, o.seq)
		return
	}

	o.state = st
	switch st.Phase {
	case domain.PhaseError:
		o.bus.Publish(eventbus.SearchFailedEvent{Query: query, Message: st.Message})
	default:
		o.bus.Publish(eventbus.SearchCompletedEvent{Query: query, Keywords: st.Keywords, Info: st.Info})
	}
}
