package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/request-flows/internal/domain"
	"github.com/google/uuid"
)

// closedRequestID is the latest request ID of a torn down controller.
// No issued request can carry it.
const closedRequestID uint64 = math.MaxUint64

// Controller drives one request at a time through
// Idle -> Loading -> Success | Failed and publishes every snapshot.
//
// Each Start allocates a strictly increasing request ID. A completion is
// applied only if its ID is still the latest one, so the last Start wins no
// matter in which order the calls finish.
//
// Observers run while the transition lock is held, in transition order.
// They must not call Start, Reject or Close.
type Controller[T any] struct {
	name      string
	id        string
	transport Transport
	recorder  Recorder
	logger    *slog.Logger
	check     func(T) error

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc

	state atomic.Pointer[domain.RequestState[T]]

	obsMu     sync.Mutex
	observers []observer[T]
	nextObsID int

	inflight sync.WaitGroup
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithPayloadCheck rejects decoded payloads for which check fails. The
// request then ends Failed with DECODE_FAILED.
func WithPayloadCheck[T any](check func(T) error) Option[T] {
	return func(c *Controller[T]) {
		c.check = check
	}
}

type observer[T any] struct {
	id int
	fn func(domain.RequestState[T])
}

func NewController[T any](
	name string,
	transport Transport,
	recorder Recorder,
	logger *slog.Logger,
	opts ...Option[T],
) *Controller[T] {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller[T]{
		name:      name,
		id:        uuid.New().String(),
		transport: transport,
		recorder:  recorder,
	}
	c.logger = logger.With("flow", name, "controller_id", c.id)
	for _, opt := range opts {
		opt(c)
	}

	var idle domain.RequestState[T] = domain.Idle[T]{}
	c.state.Store(&idle)
	return c
}

// CurrentState returns the latest snapshot. It never blocks.
func (c *Controller[T]) CurrentState() domain.RequestState[T] {
	return *c.state.Load()
}

// Subscribe registers fn for every future transition.
func (c *Controller[T]) Subscribe(fn func(domain.RequestState[T])) (unsubscribe func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, observer[T]{id: id, fn: fn})

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Start moves to Loading before returning and performs exactly one call in
// the background. A request already in flight is superseded.
func (c *Controller[T]) Start(ctx context.Context, cfg domain.RequestConfig, body any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == closedRequestID {
		c.logger.Warn("start ignored on closed controller", "url", cfg.URL)
		return
	}

	requestID := c.supersede()
	c.publish(domain.Loading[T]{RequestID: requestID}, requestID)

	req, err := buildRequest(cfg, body)
	if err != nil {
		c.publish(failed[T](domain.NewEncodeError(err)), requestID)
		return
	}

	callCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.logger.Debug("request started",
		"request_id", requestID,
		"method", req.Method,
		"url", req.URL)

	c.inflight.Add(1)
	go c.run(callCtx, cancel, requestID, cfg, req)
}

// Reject moves straight to Failed without a network call. It supersedes
// any request in flight. A nil err is reported as ErrRejected.
func (c *Controller[T]) Reject(err error) {
	if err == nil {
		err = ErrRejected
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == closedRequestID {
		c.logger.Warn("reject ignored on closed controller", "error", err)
		return
	}

	requestID := c.supersede()

	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = &domain.DomainError{
			Code:    domain.ErrCodeValidationFailed,
			Message: err.Error(),
			Err:     err,
		}
	}
	c.publish(failed[T](domainErr), requestID)
}

// Wait blocks until every issued call has completed.
func (c *Controller[T]) Wait() {
	c.inflight.Wait()
}

// Close tears the controller down. Completions still in flight are dropped
// and later Start or Reject calls are ignored.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == closedRequestID {
		return
	}
	c.latest = closedRequestID
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.logger.Debug("controller closed")
}

// supersede allocates the next request ID and cancels the call in flight.
// c.mu must be held.
func (c *Controller[T]) supersede() uint64 {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.latest++
	return c.latest
}

func (c *Controller[T]) run(
	ctx context.Context,
	cancel context.CancelFunc,
	requestID uint64,
	cfg domain.RequestConfig,
	req Request,
) {
	defer c.inflight.Done()
	defer cancel()

	started := time.Now()
	resp, err := c.transport.Do(ctx, req)
	c.recorder.ObserveDuration(c.name, time.Since(started))

	c.complete(requestID, settle(cfg, resp, err, c.check))
}

// complete applies next only if requestID is still the latest one.
func (c *Controller[T]) complete(requestID uint64, next domain.RequestState[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if requestID != c.latest {
		c.logger.Debug("dropping stale completion",
			"request_id", requestID,
			"status", next.Status())
		c.recorder.ObserveStale(c.name)
		return
	}

	c.cancel = nil
	c.publish(next, requestID)
}

// publish stores the snapshot and notifies observers. c.mu must be held.
func (c *Controller[T]) publish(next domain.RequestState[T], requestID uint64) {
	c.state.Store(&next)
	c.recorder.ObserveTransition(c.name, string(next.Status()))

	if f, ok := next.(domain.Failed[T]); ok {
		category := CategorizeError(f.Err)
		c.recorder.ObserveFailure(c.name, category)
		c.logger.Warn("request failed",
			"request_id", requestID,
			"category", category,
			"error", f.Err)
	} else {
		c.logger.Debug("state changed",
			"request_id", requestID,
			"status", next.Status())
	}

	c.obsMu.Lock()
	observers := make([]observer[T], len(c.observers))
	copy(observers, c.observers)
	c.obsMu.Unlock()

	for _, o := range observers {
		o.fn(next)
	}
}

// settle turns the outcome of a call into the next snapshot.
func settle[T any](cfg domain.RequestConfig, resp *Response, err error, check func(T) error) domain.RequestState[T] {
	if err != nil {
		return failed[T](domain.NewTransportError(err))
	}

	if !resp.OK() {
		return failed[T](domain.NewUnexpectedStatusError(
			cfg.ResolvedStatusErrorMessage(),
			newStatusError(resp),
		))
	}

	var payload T
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return failed[T](domain.NewDecodeError(err))
	}
	if check != nil {
		if err := check(payload); err != nil {
			return failed[T](domain.NewDecodeError(err))
		}
	}

	return domain.Success[T]{Payload: payload}
}

func failed[T any](err *domain.DomainError) domain.RequestState[T] {
	return domain.Failed[T]{Message: err.Message, Err: err}
}

func buildRequest(cfg domain.RequestConfig, body any) (Request, error) {
	req := Request{
		Method:  cfg.ResolvedMethod(),
		URL:     cfg.URL,
		Headers: make(map[string]string, len(cfg.Headers)),
	}
	for name, value := range cfg.Headers {
		req.Headers[name] = value
	}

	if body == nil {
		return req, nil
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return Request{}, err
	}
	req.Body = jsonData
	return req, nil
}
