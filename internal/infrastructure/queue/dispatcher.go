package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Subscriber consumes a single domain event.
type Subscriber func(ctx context.Context, event domain.Event)

// Dispatcher is an in-process EventBus that fans events out to subscribers
// on a fixed set of workers, sharded by the triggering account's uid. Events
// for one account are always delivered in publication order.
type Dispatcher struct {
	workers     []chan domain.Event
	subscribers []Subscriber
	log         zerolog.Logger
}

var _ ports.EventBus = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Event, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Event, channelBuffer)
	}
	return d
}

// Subscribe registers a subscriber. Must be called before Start.
func (d *Dispatcher) Subscribe(sub Subscriber) {
	d.subscribers = append(d.subscribers, sub)
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish enqueues the event on the worker responsible for its aggregate.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(_ context.Context, event domain.Event) error {
	idx := d.shardIndex(event)
	d.workers[idx] <- event
	metrics.EventsPublishedTotal.WithLabelValues(event.EventName()).Inc()
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps an event deterministically to a worker index. Account
// events shard on the account uid; anything else lands on worker 0.
func (d *Dispatcher) shardIndex(event domain.Event) int {
	ae, ok := event.(domain.AccountEvent)
	if !ok {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(ae.TriggeredBy().UID()))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			for _, sub := range d.subscribers {
				sub(ctx, event)
			}
			d.log.Debug().
				Str("event", event.EventName()).
				Int("worker_id", id).
				Msg("event delivered")
		}
	}
}
