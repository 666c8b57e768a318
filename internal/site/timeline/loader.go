package timeline

import (
	"context"
	"sync"

	"github.com/portfolio/portfolio-api/internal/pkg/logger"
)

// State is the data loading state of the Experience page.
type State int

const (
	// StateLoading is the state before the fetch resolves.
	StateLoading State = iota
	// StateLoaded holds the remote sequence verbatim.
	StateLoaded
	// StateFallback holds the local fallback set.
	StateFallback
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateFallback:
		return "fallback"
	default:
		return "loading"
	}
}

// View is the sequence the page currently holds.
type View struct {
	State State
	Items []Item
}

// Filter derives the category view from the held sequence without fetching.
func (v View) Filter(category string) []Item {
	return Filter(v.Items, category)
}

// Fetcher reads the remote experience list.
type Fetcher interface {
	FetchExperiences(ctx context.Context) ([]Item, error)
}

// Loader resolves the Experience page data: remote on success, fallback on
// any failure. It never retries.
type Loader struct {
	fetcher  Fetcher
	fallback func() []Item
}

// NewLoader creates a loader over fetcher using the built-in fallback set.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher, fallback: Fallback}
}

// Load performs one fetch and returns the resolved view.
func (l *Loader) Load(ctx context.Context) View {
	items, err := l.fetcher.FetchExperiences(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("Using fallback experiences")
		return View{State: StateFallback, Items: l.fallback()}
	}

	// Tag a copy; the fetcher may hand out a shared slice.
	held := make([]Item, len(items))
	copy(held, items)
	for i := range held {
		if held[i].Category == "" {
			held[i].Category = CategoryWork
		}
	}
	return View{State: StateLoaded, Items: held}
}

// Start issues the fetch in the background and returns immediately. The
// returned Session reports StateLoading until the fetch resolves.
func (l *Loader) Start(ctx context.Context) *Session {
	s := &Session{done: make(chan struct{})}
	go func() {
		view := l.Load(ctx)
		s.mu.Lock()
		s.view = view
		s.mu.Unlock()
		close(s.done)
	}()
	return s
}

// Session is one page view's in-flight or resolved load.
type Session struct {
	mu   sync.Mutex
	view View
	done chan struct{}
}

// View returns the current view; StateLoading while the fetch is in flight.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Wait blocks until the fetch resolves or ctx is done. On ctx expiry the
// current view, possibly still loading, is returned.
func (s *Session) Wait(ctx context.Context) View {
	select {
	case <-s.done:
	case <-ctx.Done():
	}
	return s.View()
}

// Done is closed once the fetch resolves.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
