package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	sendTimeout    = 30 * time.Second
)

// InquiryHandler delivers the notification for one inquiry.
type InquiryHandler func(ctx context.Context, inquiry domain.Inquiry) error

// Dispatcher hands new inquiries to a fixed pool of workers that send the
// notification email off the request path. Failures are logged and never
// retried.
type Dispatcher struct {
	jobs    chan domain.Inquiry
	handler InquiryHandler
	workers int
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, handler InquiryHandler, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:    make(chan domain.Inquiry, channelBuffer),
		handler: handler,
		workers: numWorkers,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx, i)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// NotifyInquiry enqueues the inquiry without blocking. When the buffer is
// full the notification is dropped.
func (d *Dispatcher) NotifyInquiry(inquiry domain.Inquiry) {
	select {
	case d.jobs <- inquiry:
	default:
		d.log.Warn().Str("inquiry_id", inquiry.ID).Msg("notification queue full, dropping inquiry notification")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case inquiry := <-d.jobs:
			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			err := d.handler(sendCtx, inquiry)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("inquiry_id", inquiry.ID).
					Int("worker_id", id).
					Msg("inquiry notification failed")
			}
		}
	}
}
