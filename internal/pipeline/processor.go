// Package pipeline processes the background tasks read from the task topic.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/internal/validation"
	"bizops-dashboard/pkg/log"
	"bizops-dashboard/pkg/storage"
	"bizops-dashboard/pkg/tasks"
)

// TextExtractor turns an attachment into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.Reader, fileName string) (string, error)
}

// Processor wires the task types to the services that handle them. Any of
// objects, extractor and index may be nil when the integration is off.
type Processor struct {
	crud      *service.CRUD
	objects   storage.ObjectStore
	extractor TextExtractor
	index     service.SearchIndex
}

func NewProcessor(crud *service.CRUD, objects storage.ObjectStore, extractor TextExtractor, index service.SearchIndex) *Processor {
	return &Processor{crud: crud, objects: objects, extractor: extractor, index: index}
}

// Process dispatches task by type.
func (p *Processor) Process(ctx context.Context, task tasks.Task) error {
	switch task.Type {
	case tasks.TypeDocumentIndex:
		if task.DocumentIndex == nil {
			return fmt.Errorf("%w: document.index task without payload", tasks.ErrPermanent)
		}
		return p.indexDocument(ctx, *task.DocumentIndex)
	case tasks.TypeKPIIngest:
		if task.KPI == nil {
			return fmt.Errorf("%w: kpi.ingest task without payload", tasks.ErrPermanent)
		}
		return p.ingestKPI(ctx, *task.KPI)
	default:
		log.Warnf("[Processor] skipping task of unknown type %q", task.Type)
		return nil
	}
}

func (p *Processor) indexDocument(ctx context.Context, task tasks.DocumentIndexTask) error {
	if p.index == nil {
		log.Infof("[Processor] search disabled, not indexing document %d", task.DocumentID)
		return nil
	}
	doc, err := p.crud.Documents.Get(ctx, task.DocumentID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warnf("[Processor] document %d was deleted before indexing", task.DocumentID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load document %d: %w", task.DocumentID, err)
	}
	esDoc := model.NewEsDocument(doc)

	// The attachment may have been replaced since the task was queued.
	if task.ObjectKey != "" && doc.AttachmentKey == task.ObjectKey && p.objects != nil && p.extractor != nil {
		text, err := p.extractAttachment(ctx, task)
		if err != nil {
			return err
		}
		esDoc.AttachmentText = text
	}

	if err := p.index.IndexDocument(ctx, esDoc); err != nil {
		return fmt.Errorf("index document %d: %w", task.DocumentID, err)
	}
	log.Infof("[Processor] document %d indexed, attachment text %d chars", task.DocumentID, utf8.RuneCountInString(esDoc.AttachmentText))
	return nil
}

func (p *Processor) extractAttachment(ctx context.Context, task tasks.DocumentIndexTask) (string, error) {
	object, err := p.objects.Get(ctx, task.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", task.ObjectKey, err)
	}
	defer object.Close()

	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(object)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", task.ObjectKey, err)
	}
	if size == 0 {
		log.Warnf("[Processor] attachment %s is empty", task.ObjectKey)
		return "", nil
	}

	text, err := p.extractor.ExtractText(ctx, bytes.NewReader(buf.Bytes()), task.FileName)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", task.FileName, err)
	}
	return text, nil
}

func (p *Processor) ingestKPI(ctx context.Context, task tasks.KPIIngestTask) error {
	switch task.Kind {
	case tasks.KPIManufacturingMetrics:
		return ingest(ctx, p.crud.ManufacturingMetrics, task.Payload)
	case tasks.KPISupplyChain:
		return ingest(ctx, p.crud.SupplyChainKpis, task.Payload)
	case tasks.KPIZeroTrust:
		return ingest(ctx, p.crud.ZeroTrustKpis, task.Payload)
	default:
		log.Warnf("[Processor] skipping KPI snapshot of unknown kind %q", task.Kind)
		return nil
	}
}

// ErrInvalidPayload marks a KPI snapshot that fails validation. It wraps
// tasks.ErrPermanent so the snapshot is not retried.
var ErrInvalidPayload = fmt.Errorf("%w: invalid kpi payload", tasks.ErrPermanent)

func ingest[T any](ctx context.Context, svc *service.CRUDService[T], payload json.RawMessage) error {
	var row T
	if err := json.Unmarshal(payload, &row); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := validation.Struct(&row); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := svc.Create(ctx, &row); err != nil {
		return fmt.Errorf("store %s snapshot: %w", svc.Resource(), err)
	}
	log.Infof("[Processor] stored %s snapshot", svc.Resource())
	return nil
}
