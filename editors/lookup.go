package editors

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

const (
	defaultLookupTimeout = 5 * time.Second
	defaultLookupRetries = 2
	defaultLookupBackoff = 200 * time.Millisecond
	defaultLookupFailed  = "?"
)

// StyleLookupFailed is the node style key of the failure placeholder.
const StyleLookupFailed = "lookup-failed"

// LookupState is the load state of a Lookup table.
type LookupState int

const (
	LookupIdle LookupState = iota
	LookupLoading
	LookupReady
	LookupFailed
)

func (s LookupState) String() string {
	switch s {
	case LookupIdle:
		return "idle"
	case LookupLoading:
		return "loading"
	case LookupReady:
		return "ready"
	case LookupFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads a lookup table. It must honor ctx.
type Fetcher func(ctx context.Context) (map[string]string, error)

// StaticFetcher returns a copy of table after delay.
func StaticFetcher(table map[string]string, delay time.Duration) Fetcher {
	return func(ctx context.Context) (map[string]string, error) {
		if delay > 0 {
			t := time.NewTimer(delay)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-t.C:
			}
		}
		out := make(map[string]string, len(table))
		for k, v := range table {
			out[k] = v
		}
		return out, nil
	}
}

// LookupOptions configures a Lookup.
type LookupOptions struct {
	// Timeout bounds one fetch attempt. Default 5s.
	Timeout time.Duration
	// Retries is the number of attempts after the first. Default 2; negative
	// disables retries.
	Retries int
	// Backoff is the wait before the first retry; it grows linearly.
	// Default 200ms.
	Backoff time.Duration

	// Loading is shown while the table loads. Default: empty.
	Loading string
	// Failed is shown once every attempt failed. Default "?".
	Failed string

	// OnReady is called from the loading goroutine once loading finished.
	// err is nil on success.
	OnReady func(err error)
}

// Lookup renders a value as its label in a table loaded asynchronously.
// Until the table is loaded cells render the Loading placeholder; values
// missing from a loaded table render empty.
//
// Lookup is safe for concurrent use.
type Lookup struct {
	fetch Fetcher
	opts  LookupOptions

	mu    sync.RWMutex
	state LookupState
	table map[string]string
	err   error

	once sync.Once
	done chan struct{}
}

var _ table.ColumnEditor = (*Lookup)(nil)

var errNilFetcher = errors.New("editors: nil lookup fetcher")

func NewLookup(fetch Fetcher, opts LookupOptions) *Lookup {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLookupTimeout
	}
	if opts.Retries == 0 {
		opts.Retries = defaultLookupRetries
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultLookupBackoff
	}
	if opts.Failed == "" {
		opts.Failed = defaultLookupFailed
	}
	return &Lookup{
		fetch: fetch,
		opts:  opts,
		done:  make(chan struct{}),
	}
}

// Start begins loading in a new goroutine. Later calls do nothing.
// Cancelling ctx aborts the load, which then ends in LookupFailed.
func (l *Lookup) Start(ctx context.Context) {
	l.once.Do(func() {
		l.mu.Lock()
		l.state = LookupLoading
		l.mu.Unlock()
		go l.run(ctx)
	})
}

// Done is closed once loading finished, successfully or not.
func (l *Lookup) Done() <-chan struct{} { return l.done }

func (l *Lookup) State() LookupState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Err returns the error of the last attempt once loading failed.
func (l *Lookup) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Label resolves key in the loaded table.
func (l *Lookup) Label(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.state != LookupReady {
		return "", false
	}
	label, ok := l.table[key]
	return label, ok
}

func (l *Lookup) Render(v grid.Value, cell table.Cell) error {
	cell.Clear()

	l.mu.RLock()
	state := l.state
	label, ok := l.table[grid.Text(v)]
	l.mu.RUnlock()

	switch state {
	case LookupReady:
		if ok {
			cell.SetText(label)
		}
	case LookupFailed:
		cell.Append(table.Node{Text: l.opts.Failed, StyleKey: StyleLookupFailed})
	default:
		cell.SetText(l.opts.Loading)
	}
	return nil
}

func (l *Lookup) run(ctx context.Context) {
	defer close(l.done)

	tbl, err := l.load(ctx)

	l.mu.Lock()
	if err != nil {
		l.state = LookupFailed
		l.err = err
	} else {
		l.state = LookupReady
		l.table = tbl
	}
	l.mu.Unlock()

	if l.opts.OnReady != nil {
		l.opts.OnReady(err)
	}
}

func (l *Lookup) load(ctx context.Context) (map[string]string, error) {
	if l.fetch == nil {
		return nil, errNilFetcher
	}

	var lastErr error
	for attempt := 0; attempt <= l.opts.Retries; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(time.Duration(attempt) * l.opts.Backoff)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, ctx.Err()
			case <-t.C:
			}
		}

		actx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
		tbl, err := l.fetch(actx)
		cancel()
		if err == nil {
			return tbl, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}
