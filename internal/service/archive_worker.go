package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/observability"
	"okta-sentinel/internal/repository"
)

// ArchiveWorker buffers audit events and flushes them to the archive in
// batches.
type ArchiveWorker interface {
	Enqueue(event model.AuditEvent)
	Shutdown()
}

type archiveWorker struct {
	archive       repository.EventArchive
	queue         chan model.AuditEvent
	batchSize     int
	flushInterval time.Duration
	wg            sync.WaitGroup
	log           logrus.FieldLogger
}

// NewArchiveWorker starts the background flush loop. Shutdown drains
// the queue before returning.
func NewArchiveWorker(archive repository.EventArchive, bufferSize, batchSize int, interval time.Duration, log logrus.FieldLogger) *archiveWorker {
	worker := &archiveWorker{
		archive:       archive,
		queue:         make(chan model.AuditEvent, bufferSize),
		batchSize:     batchSize,
		flushInterval: interval,
		log:           log,
	}
	worker.wg.Add(1)
	go worker.startLoop()
	return worker
}

// Enqueue hands an event to the worker. Blocks when the buffer is full.
func (w *archiveWorker) Enqueue(event model.AuditEvent) {
	w.queue <- event
	observability.ArchiveQueueDepth.Set(float64(len(w.queue)))
}

// Shutdown closes the queue and waits for the remaining events to be
// flushed.
func (w *archiveWorker) Shutdown() {
	close(w.queue)
	w.wg.Wait()
	w.log.Info("archive worker stopped")
}

func (w *archiveWorker) startLoop() {
	defer w.wg.Done()

	var batch []model.AuditEvent
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.queue:
			if !ok {
				if len(batch) > 0 {
					w.flush(batch)
				}
				return
			}

			batch = append(batch, event)
			if len(batch) >= w.batchSize {
				w.flush(batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = nil
			}
		}
		observability.ArchiveQueueDepth.Set(float64(len(w.queue)))
	}
}

func (w *archiveWorker) flush(events []model.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.archive.InsertBatch(ctx, events); err != nil {
		observability.ArchiveFlushErrorsTotal.Inc()
		w.log.WithError(err).Error("archive batch insert failed")
		return
	}

	observability.ArchiveFlushTotal.Inc()
	w.log.WithField("count", len(events)).Debug("events archived")
}
