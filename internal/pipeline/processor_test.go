package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/pkg/database"
	"bizops-dashboard/pkg/kafka"
	"bizops-dashboard/pkg/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memObjects map[string][]byte

func (m memObjects) Put(context.Context, string, io.Reader, int64, string) error { return nil }

func (m memObjects) Get(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := m[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m memObjects) PresignedURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

type upperExtractor struct{}

func (upperExtractor) ExtractText(_ context.Context, r io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(r)
	return "extracted: " + string(data), err
}

type memIndex struct {
	mu   sync.Mutex
	docs map[uint]model.EsDocument
}

func (m *memIndex) IndexDocument(_ context.Context, doc model.EsDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.docs == nil {
		m.docs = map[uint]model.EsDocument{}
	}
	m.docs[doc.DocumentID] = doc
	return nil
}

func (m *memIndex) DeleteDocument(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memIndex) Search(context.Context, string, string, int) ([]model.SearchHit, error) {
	return nil, nil
}

func (m *memIndex) get(id uint) (model.EsDocument, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	return d, ok
}

func newCRUD(t *testing.T) *service.CRUD {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	store := repository.NewStore(db)
	require.NoError(t, store.AutoMigrate(context.Background()))
	return service.NewCRUD(store, nil)
}

func TestProcessIndexesAttachmentText(t *testing.T) {
	ctx := context.Background()
	crud := newCRUD(t)
	doc := &model.Document{Brand: model.BrandTechnova, Title: "VPN guide", Content: "body", AttachmentKey: "documents/technova/1/vpn.txt", AttachmentName: "vpn.txt"}
	require.NoError(t, crud.Documents.Create(ctx, doc))

	index := &memIndex{}
	objects := memObjects{doc.AttachmentKey: []byte("connect first")}
	p := NewProcessor(crud, objects, upperExtractor{}, index)

	err := p.Process(ctx, tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{
		DocumentID: doc.ID, Brand: doc.Brand, ObjectKey: doc.AttachmentKey, FileName: "vpn.txt",
	}})
	require.NoError(t, err)

	got, ok := index.get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, "VPN guide", got.Title)
	assert.Equal(t, "extracted: connect first", got.AttachmentText)
}

func TestProcessSkipsStaleAttachment(t *testing.T) {
	ctx := context.Background()
	crud := newCRUD(t)
	doc := &model.Document{Brand: model.BrandTechnova, Title: "Handbook", AttachmentKey: "documents/technova/1/new.pdf"}
	require.NoError(t, crud.Documents.Create(ctx, doc))

	index := &memIndex{}
	p := NewProcessor(crud, memObjects{}, upperExtractor{}, index)

	err := p.Process(ctx, tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{
		DocumentID: doc.ID, ObjectKey: "documents/technova/1/old.pdf",
	}})
	require.NoError(t, err)
	got, ok := index.get(doc.ID)
	require.True(t, ok)
	assert.Empty(t, got.AttachmentText)
}

func TestProcessDeletedDocument(t *testing.T) {
	p := NewProcessor(newCRUD(t), memObjects{}, upperExtractor{}, &memIndex{})
	err := p.Process(context.Background(), tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{DocumentID: 99}})
	assert.NoError(t, err)
}

func TestProcessMissingObjectFails(t *testing.T) {
	ctx := context.Background()
	crud := newCRUD(t)
	doc := &model.Document{Brand: model.BrandBlorcs, Title: "Policy", AttachmentKey: "documents/blorcs/1/p.pdf"}
	require.NoError(t, crud.Documents.Create(ctx, doc))

	p := NewProcessor(crud, memObjects{}, upperExtractor{}, &memIndex{})
	err := p.Process(ctx, tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{
		DocumentID: doc.ID, ObjectKey: doc.AttachmentKey,
	}})
	assert.Error(t, err)
}

func TestProcessIngestsKPISnapshots(t *testing.T) {
	ctx := context.Background()
	crud := newCRUD(t)
	p := NewProcessor(crud, nil, nil, nil)

	payload, err := json.Marshal(map[string]any{"brand": "technova", "period": "2024-03", "overallScore": 81.5})
	require.NoError(t, err)
	require.NoError(t, p.Process(ctx, tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPIZeroTrust, Payload: payload}}))

	rows, err := crud.ZeroTrustKpis.List(ctx, repository.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 81.5, rows[0].OverallScore)

	payload, err = json.Marshal(map[string]any{"brand": "shaypops", "period": "2024-03", "fillRate": 97.2})
	require.NoError(t, err)
	require.NoError(t, p.Process(ctx, tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPISupplyChain, Payload: payload}}))
	chain, err := crud.SupplyChainKpis.List(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Len(t, chain, 1)
}

func TestProcessRejectsInvalidKPI(t *testing.T) {
	p := NewProcessor(newCRUD(t), nil, nil, nil)
	payload := json.RawMessage(`{"brand":"acme","period":"2024-03"}`)
	err := p.Process(context.Background(), tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPIManufacturingMetrics, Payload: payload}})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, tasks.ErrPermanent)

	calls := 0
	counting := taskFunc(func(ctx context.Context, task tasks.Task) error {
		calls++
		return p.Process(ctx, task)
	})
	ok := kafka.HandleTask(context.Background(), counting, kafka.NewAttemptCounter(nil),
		tasks.Task{Type: tasks.TypeKPIIngest, KPI: &tasks.KPIIngestTask{Kind: tasks.KPIManufacturingMetrics, Payload: payload}})
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

type taskFunc func(ctx context.Context, task tasks.Task) error

func (f taskFunc) Process(ctx context.Context, task tasks.Task) error { return f(ctx, task) }

func TestInlineProducerRunsTasks(t *testing.T) {
	ctx := context.Background()
	crud := newCRUD(t)
	doc := &model.Document{Brand: model.BrandShaypops, Title: "Returns"}
	require.NoError(t, crud.Documents.Create(ctx, doc))

	index := &memIndex{}
	producer := NewInlineProducer(ctx, NewProcessor(crud, nil, nil, index), kafka.NewAttemptCounter(nil))
	require.NoError(t, producer.ProduceTask(ctx, tasks.Task{Type: tasks.TypeDocumentIndex, DocumentIndex: &tasks.DocumentIndexTask{DocumentID: doc.ID}}))
	producer.Wait()

	_, ok := index.get(doc.ID)
	assert.True(t, ok)
}
