package silero

import (
	"context"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/xsync"
)

type Result struct {
	Probability float32
	Err         error
}

type asyncRequest struct {
	Context context.Context
	Samples []float32
	Result  chan<- Result
}

// Async runs Detect calls of a Detector in a background goroutine,
// strictly in the order they were submitted.
type Async struct {
	Detector Detector
	Requests chan asyncRequest
	Locker   xsync.Mutex
	IsClosed bool
	WG       sync.WaitGroup
}

func NewAsync(
	ctx context.Context,
	detector Detector,
	queueSize uint,
) *Async {
	a := &Async{
		Detector: detector,
		Requests: make(chan asyncRequest, queueSize),
	}
	a.WG.Add(1)
	observability.Go(ctx, func() {
		defer a.WG.Done()
		a.loop(ctx)
	})
	return a
}

func (a *Async) loop(ctx context.Context) {
	logger.Tracef(ctx, "loop")
	defer func() { logger.Tracef(ctx, "/loop") }()

	for req := range a.Requests {
		select {
		case <-req.Context.Done():
			req.Result <- Result{Err: req.Context.Err()}
			continue
		default:
		}
		probability, err := a.Detector.Detect(req.Context, req.Samples)
		req.Result <- Result{Probability: probability, Err: err}
	}
}

// DetectAsync enqueues samples; the result is delivered to the returned channel.
// The samples must not be modified until the result is received.
func (a *Async) DetectAsync(
	ctx context.Context,
	samples []float32,
) <-chan Result {
	result := make(chan Result, 1)
	a.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		if a.IsClosed {
			result <- Result{Err: ErrClosed{}}
			return
		}
		select {
		case a.Requests <- asyncRequest{Context: ctx, Samples: samples, Result: result}:
		case <-ctx.Done():
			result <- Result{Err: ctx.Err()}
		}
	})
	return result
}

// Close waits until all the enqueued requests are processed. It does not close the Detector.
func (a *Async) Close() error {
	ctx := context.TODO()
	a.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		if a.IsClosed {
			return
		}
		a.IsClosed = true
		close(a.Requests)
	})
	a.WG.Wait()
	return nil
}
