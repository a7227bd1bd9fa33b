package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

const (
	TypeEmail = "email"

	queueBuffer = 64
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrQueueFull is returned when the job queue cannot accept more work.
var ErrQueueFull = errors.New("job queue is full")

// Dispatcher enqueues async jobs into an in-process buffered channel.
// The worker pool consumes the channel; jobs are best-effort and do not
// survive a restart — acceptable for fire-and-forget receipt delivery.
type Dispatcher struct {
	jobs chan Job
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{jobs: make(chan Job, queueBuffer)}
}

// EnqueueEmail pushes a receipt email job. Never blocks; a full queue is an error.
func (d *Dispatcher) EnqueueEmail(payload interface{}) error {
	return d.enqueue(TypeEmail, payload)
}

func (d *Dispatcher) enqueue(jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	select {
	case d.jobs <- Job{Type: jobType, Payload: data}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Handlers holds the per-type job processors, wired at the composition root.
type Handlers struct {
	Email *EmailWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the dispatcher's
// queue until ctx is cancelled.
func StartWorkerPool(ctx context.Context, d *Dispatcher, handlers *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, d, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, d *Dispatcher, handlers *Handlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		case job := <-d.jobs:
			processJob(ctx, handlers, job)
		}
	}
}

func processJob(ctx context.Context, handlers *Handlers, job Job) {
	log.Info().Str("type", job.Type).Msg("processing job")
	var err error
	switch job.Type {
	case TypeEmail:
		err = handlers.Email.Handle(ctx, job.Payload)
	default:
		log.Error().Str("type", job.Type).Msg("unknown job type")
		return
	}
	if err != nil {
		log.Error().Str("type", job.Type).Err(err).Msg("job failed")
	}
}
