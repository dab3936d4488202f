package engine

import (
	"context"
	"fmt"
	"time"

	"scholarship/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Store is the persistence the engine composes under the per-application
// lock. Each call is expected to be atomic for a single record. LoadApplication
// must return an error wrapping ErrNotFound for unknown ids.
type Store interface {
	LoadApplication(ctx context.Context, id int) (*Application, error)
	LoadReviewRecords(ctx context.Context, applicationID int) ([]*ReviewRecord, error)
	SaveReviewRecord(ctx context.Context, record *ReviewRecord) error
	SaveApplicationStatus(ctx context.Context, id int, status Status) error
}

// TxStore is implemented by stores able to run a mutation in a single
// transaction. The engine prefers it over plain Store calls.
type TxStore interface {
	Store
	InTx(ctx context.Context, applicationID int, fn func(Store) error) error
}

type ReviewerDirectory interface {
	IsReviewer(ctx context.Context, userID int) (bool, error)
}

type AuditEntry struct {
	Action        string
	Message       string
	ActorID       int
	ApplicationID int
	Warning       bool
}

type Auditor interface {
	Record(ctx context.Context, entry AuditEntry) error
}

type LifecycleEvent struct {
	ApplicationID int       `json:"application_id"`
	ActorID       int       `json:"actor_id"`
	From          Status    `json:"from"`
	To            Status    `json:"to"`
	Premature     bool      `json:"premature"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event LifecycleEvent) error
}

type Engine struct {
	store     Store
	reviewers ReviewerDirectory
	policy    Policy
	locker    Locker
	auditor   Auditor
	publisher Publisher
	now       func() time.Time
	logger    zerolog.Logger
}

type Option func(*Engine)

func WithLocker(locker Locker) Option {
	return func(e *Engine) { e.locker = locker }
}

func WithAuditor(auditor Auditor) Option {
	return func(e *Engine) { e.auditor = auditor }
}

func WithPublisher(publisher Publisher) Option {
	return func(e *Engine) { e.publisher = publisher }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func New(store Store, reviewers ReviewerDirectory, policy Policy, opts ...Option) (*Engine, error) {
	if err := policy.Scale.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		store:     store,
		reviewers: reviewers,
		policy:    policy,
		locker:    NewKeyedLocker(),
		auditor:   nopAuditor{},
		publisher: nopPublisher{},
		now:       time.Now,
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// journal collects the side effects of a mutation. They are only flushed
// once the mutation is committed and the lock released.
type journal struct {
	events  []LifecycleEvent
	entries []AuditEntry
}

func (j *journal) transition(applicationID, actorID int, outcome Outcome, at time.Time) {
	j.events = append(j.events, LifecycleEvent{
		ApplicationID: applicationID,
		ActorID:       actorID,
		From:          outcome.From,
		To:            outcome.To,
		Premature:     outcome.Premature,
		OccurredAt:    at,
	})
}

func (j *journal) audit(entry AuditEntry) {
	j.entries = append(j.entries, entry)
}

func (e *Engine) withApplication(ctx context.Context, operation string, applicationID int, fn func(Store) error) error {
	start := time.Now()
	defer func() {
		metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	release, err := e.locker.Lock(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("lock application %d: %w", applicationID, err)
	}
	defer release()

	if tx, ok := e.store.(TxStore); ok {
		err = tx.InTx(ctx, applicationID, fn)
	} else {
		err = fn(e.store)
	}
	if err != nil {
		metrics.RejectedOperationCounter.WithLabelValues(operation).Inc()
	}
	return err
}

// flush writes audit entries and publishes lifecycle events. Failures are
// logged and dropped so they never undo a committed mutation.
func (e *Engine) flush(ctx context.Context, j *journal) {
	for _, entry := range j.entries {
		if err := e.auditor.Record(ctx, entry); err != nil {
			metrics.SideEffectFailureCounter.WithLabelValues("audit").Inc()
			e.logger.Warn().Err(err).Str("action", entry.Action).Int("application_id", entry.ApplicationID).Msg("audit record dropped")
		}
	}
	for _, event := range j.events {
		metrics.StatusTransitionCounter.WithLabelValues(string(event.From), string(event.To)).Inc()
		if err := e.publisher.Publish(ctx, event); err != nil {
			metrics.SideEffectFailureCounter.WithLabelValues("publish").Inc()
			e.logger.Warn().Err(err).Int("application_id", event.ApplicationID).Str("to", string(event.To)).Msg("lifecycle event dropped")
		}
	}
}

func loadApplication(ctx context.Context, store Store, id int) (*Application, error) {
	app, err := store.LoadApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	return app, nil
}

type nopAuditor struct{}

func (nopAuditor) Record(context.Context, AuditEntry) error { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, LifecycleEvent) error { return nil }
