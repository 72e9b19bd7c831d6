package table

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
)

// Loader loads one display page. *artic.PageLoader satisfies it.
type Loader interface {
	LoadPage(ctx context.Context, page int) (*model.Page, error)
}

// Gatherer gathers the first n records. *artic.Gatherer satisfies it.
type Gatherer interface {
	Gather(ctx context.Context, n int) ([]model.Artwork, error)
}

// Executor performs effects against the upstream.
type Executor struct {
	Loader   Loader
	Gatherer Gatherer
}

// Perform runs the effect and returns the event reporting its outcome.
// It returns nil for a nil effect.
func (x Executor) Perform(ctx context.Context, eff Effect) Event {
	switch eff := eff.(type) {
	case LoadPage:
		page, err := x.Loader.LoadPage(ctx, eff.Page)
		if err != nil {
			return PageLoaded{Page: eff.Page, Err: err}
		}
		return PageLoaded{Page: eff.Page, Artworks: page.Artworks, Total: page.Total}

	case Gather:
		rows, err := x.Gatherer.Gather(ctx, eff.Count)
		return BulkGathered{Artworks: rows, Err: err}
	}
	return nil
}

// Store owns a State for callers without an event loop of their own.
//
// Reductions are serialized by a mutex; effects run outside it, so two
// overlapping page changes issue two requests and whichever response comes
// back last decides the rows.
type Store struct {
	mu       sync.Mutex
	state    State
	executor Executor
	logger   zerolog.Logger
}

// NewStore creates a store in the initial state. Call Init to load page 1.
func NewStore(pageSize int, executor Executor) *Store {
	return &Store{
		state:    New(pageSize),
		executor: executor,
		logger:   logging.NewLogger("table"),
	}
}

// Init loads the current page and returns the resulting state.
func (s *Store) Init(ctx context.Context) State {
	s.mu.Lock()
	state, eff := s.state.Init()
	s.state = state
	s.mu.Unlock()

	return s.run(ctx, eff)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Dispatch applies the event, performs any effect it yields until none is
// left, and returns the state after the last reduction.
func (s *Store) Dispatch(ctx context.Context, ev Event) State {
	return s.run(ctx, s.apply(ev))
}

// DispatchBatch reduces every event under one lock, so no other dispatch
// lands between them, then performs the resulting effects in order.
func (s *Store) DispatchBatch(ctx context.Context, events ...Event) State {
	s.mu.Lock()
	var effects []Effect
	for _, ev := range events {
		state, eff := Reduce(s.state, ev)
		s.state = state
		if eff != nil {
			effects = append(effects, eff)
		}
	}
	s.mu.Unlock()

	for _, eff := range effects {
		s.run(ctx, eff)
	}
	return s.State()
}

func (s *Store) run(ctx context.Context, eff Effect) State {
	for eff != nil {
		ev := s.executor.Perform(ctx, eff)
		if ev == nil {
			break
		}
		s.logEffect(eff, ev)
		eff = s.apply(ev)
	}
	return s.State()
}

func (s *Store) apply(ev Event) Effect {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, eff := Reduce(s.state, ev)
	s.state = state
	return eff
}

func (s *Store) snapshot() State {
	st := s.state
	st.Selection = s.state.Selection.Clone()
	return st
}

func (s *Store) logEffect(eff Effect, ev Event) {
	switch ev := ev.(type) {
	case PageLoaded:
		if ev.Err != nil {
			s.logger.Warn().Err(ev.Err).Int("page", ev.Page).Msg("page load failed, showing empty page")
			return
		}
		s.logger.Debug().Int("page", ev.Page).Int("rows", len(ev.Artworks)).Int("total", ev.Total).Msg("page loaded")
	case BulkGathered:
		g := eff.(Gather)
		evt := s.logger.Debug()
		if ev.Err != nil {
			evt = s.logger.Warn().Err(ev.Err)
		}
		evt.Int("requested", g.Count).Int("gathered", len(ev.Artworks)).Msg("bulk selection replaced")
	}
}
