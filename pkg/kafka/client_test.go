package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/pkg/tasks"

	"github.com/stretchr/testify/assert"
)

type flakyProcessor struct {
	failures int
	calls    int
	err      error
}

func (p *flakyProcessor) Process(context.Context, tasks.Task) error {
	p.calls++
	if p.calls <= p.failures {
		if p.err != nil {
			return p.err
		}
		return errors.New("boom")
	}
	return nil
}

func TestHandleTaskRetriesUntilSuccess(t *testing.T) {
	retryDelay = 0
	counter := NewAttemptCounter(nil)
	proc := &flakyProcessor{failures: 2}
	task := tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{ObjectKey: "a.pdf"}}

	assert.True(t, HandleTask(context.Background(), proc, counter, task))
	assert.Equal(t, 3, proc.calls)
}

func TestHandleTaskGivesUpAfterMaxAttempts(t *testing.T) {
	retryDelay = 0
	counter := NewAttemptCounter(nil)
	proc := &flakyProcessor{failures: 10}
	task := tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPIZeroTrust, Payload: []byte(`{}`)}}

	assert.False(t, HandleTask(context.Background(), proc, counter, task))
	assert.Equal(t, MaxAttempts, proc.calls)

	// The counter is reset so a redelivered task gets a fresh budget.
	n, err := counter.Incr(context.Background(), task.Key())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestHandleTaskStopsOnPermanentFailure(t *testing.T) {
	retryDelay = 0
	counter := NewAttemptCounter(nil)
	proc := &flakyProcessor{failures: 10, err: fmt.Errorf("decode snapshot: %w", tasks.ErrPermanent)}
	task := tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPISupplyChain, Payload: []byte(`[]`)}}

	assert.False(t, HandleTask(context.Background(), proc, counter, task))
	assert.Equal(t, 1, proc.calls)

	n, err := counter.Incr(context.Background(), task.Key())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBrokersSplitsAndTrims(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, Brokers(config.KafkaConfig{Brokers: " a:9092, ,b:9092"}))
	assert.Empty(t, Brokers(config.KafkaConfig{}))
}
