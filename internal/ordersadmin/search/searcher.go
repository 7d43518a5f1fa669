package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/listquery"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

// DefaultDelay is the keystroke debounce window of the original console.
const DefaultDelay = 500 * time.Millisecond

type Fetch[T any] func(ctx context.Context, params listquery.Params) (listquery.Result[T], error)

// Apply receives the outcome of a fetch that is still current. Stale
// results never reach it.
type Apply[T any] func(result listquery.Result[T], err error)

// Searcher drives a live-search list view: keystrokes are debounced so only
// the final text within the window issues a fetch, the page resets to 1
// exactly once per distinct effective search value, and responses that were
// overtaken by a newer request are discarded instead of overwriting newer
// state. The fetch itself stays a plain idempotent read; all sequencing
// lives here, on the caller side of the ListQuery contract.
type Searcher[T any] struct {
	fetch  Fetch[T]
	apply  Apply[T]
	delay  time.Duration
	logger *logging.ZapLogger

	mux           sync.Mutex
	params        listquery.Params
	lastEffective string
	timer         *time.Timer
	timerSeq      uint64
	generation    uint64
	closed        bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New[T any](fetch Fetch[T], apply Apply[T], params listquery.Params, delay time.Duration, logger *logging.ZapLogger) *Searcher[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Searcher[T]{
		fetch:  fetch,
		apply:  apply,
		delay:  delay,
		logger: logger,
		params: params.Normalize(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetText restarts the debounce window with the new raw text. Nothing is
// fetched until the window elapses; page state is untouched until then.
func (s *Searcher[T]) SetText(text string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	// Stop does not cover a callback that already fired and is waiting on
	// the mutex; the sequence number makes such an overtaken commit a no-op.
	s.timerSeq++
	seq := s.timerSeq
	s.timer = time.AfterFunc(s.delay, func() {
		s.commitText(seq, text)
	})
}

func (s *Searcher[T]) commitText(seq uint64, text string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed || seq != s.timerSeq {
		return
	}
	effective := strings.TrimSpace(text)
	if effective == s.lastEffective {
		return
	}
	s.lastEffective = effective
	s.params.Search = effective
	s.params.Page = 1
	s.issueLocked()
}

// SetPage jumps to a page and fetches immediately.
func (s *Searcher[T]) SetPage(page int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return
	}
	s.params.Page = page
	s.issueLocked()
}

// SetFilter changes an exact-match filter, resets to the first page and
// fetches immediately.
func (s *Searcher[T]) SetFilter(name, value string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return
	}
	if s.params.Filters == nil {
		s.params.Filters = make(map[string]string)
	}
	s.params.Filters[name] = value
	s.params.Page = 1
	s.issueLocked()
}

// SetSort changes the sort column/direction, resets to the first page and
// fetches immediately.
func (s *Searcher[T]) SetSort(column string, order listquery.SortOrder) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return
	}
	s.params.SortBy = column
	s.params.SortOrder = order
	s.params.Page = 1
	s.issueLocked()
}

// Refresh re-fetches the current page.
func (s *Searcher[T]) Refresh() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return
	}
	s.issueLocked()
}

func (s *Searcher[T]) issueLocked() {
	s.generation++
	generation := s.generation
	params := s.params
	s.wg.Add(1)
	go s.run(generation, params)
}

func (s *Searcher[T]) run(generation uint64, params listquery.Params) {
	defer s.wg.Done()
	result, err := s.fetch(s.ctx, params)

	s.mux.Lock()
	current := generation == s.generation && !s.closed
	s.mux.Unlock()
	if !current {
		s.logger.DebugCtx(s.ctx, "discarding stale list response",
			zap.Uint64("generation", generation),
		)
		return
	}
	s.apply(result, err)
}

// Close stops the debounce timer, cancels in-flight fetches and waits for
// them to finish. No apply callback runs after Close returns.
func (s *Searcher[T]) Close() {
	s.mux.Lock()
	if s.closed {
		s.mux.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mux.Unlock()
	s.cancel()
	s.wg.Wait()
}
