package pipeline

import (
	"context"
	"sync"

	"bizops-dashboard/pkg/kafka"
	"bizops-dashboard/pkg/tasks"
)

// InlineProducer runs tasks in-process when no broker is configured. Tasks
// still get the same retry policy as the Kafka consumer.
type InlineProducer struct {
	ctx       context.Context
	processor kafka.TaskProcessor
	counter   kafka.AttemptCounter
	wg        sync.WaitGroup
}

// NewInlineProducer runs tasks under ctx, which should live as long as the server.
func NewInlineProducer(ctx context.Context, processor kafka.TaskProcessor, counter kafka.AttemptCounter) *InlineProducer {
	return &InlineProducer{ctx: ctx, processor: processor, counter: counter}
}

// ProduceTask starts task in the background and returns immediately.
func (p *InlineProducer) ProduceTask(_ context.Context, task tasks.Task) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		kafka.HandleTask(p.ctx, p.processor, p.counter, task)
	}()
	return nil
}

// Wait blocks until every started task has finished.
func (p *InlineProducer) Wait() {
	p.wg.Wait()
}
