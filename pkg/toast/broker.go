package toast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// Broker pairs confirmation ids with the resolvers of their futures and makes sure
// each future is settled at most once.
type Broker struct {
	pending map[ID]async.Resolve[bool]
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewBroker creates an empty broker. A nil logger falls back to slog.Default().
func NewBroker(log *slog.Logger) *Broker {
	if log == nil {
		log = slog.Default()
	}
	return &Broker{
		pending: make(map[ID]async.Resolve[bool]),
		logger:  log,
	}
}

// Register creates the pending future for id.
func (b *Broker) Register(id ID) (*async.Future[bool], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.pending[id]; exists {
		return nil, ErrDuplicateID
	}

	future, resolve := async.NewPromise[bool]()
	b.pending[id] = resolve
	return future, nil
}

// Settle resolves the future registered for id with confirmed.
// The pairing is removed before the resolver runs, so a concurrent or reentrant
// Settle for the same id finds nothing and returns false.
func (b *Broker) Settle(id ID, confirmed bool) bool {
	b.mu.Lock()
	resolve, ok := b.pending[id]
	delete(b.pending, id)
	b.mu.Unlock()

	if !ok {
		b.logger.LogAttrs(context.Background(), slog.LevelDebug, "orphan settlement ignored",
			logger.Component("broker"),
			logger.ConfirmationID(uint64(id)),
		)
		return false
	}

	return resolve(confirmed, nil)
}

// SettleAll resolves every pending future with confirmed and returns how many there were.
func (b *Broker) SettleAll(confirmed bool) int {
	b.mu.Lock()
	drained := b.pending
	b.pending = make(map[ID]async.Resolve[bool])
	b.mu.Unlock()

	for _, resolve := range drained {
		resolve(confirmed, nil)
	}
	return len(drained)
}

// Pending returns the number of unsettled futures.
func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
