package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/llm"
	"bizops-dashboard/pkg/log"
	"bizops-dashboard/pkg/storage"
	"bizops-dashboard/pkg/tasks"
)

// DownloadURLExpiry is the lifetime of presigned attachment links.
const DownloadURLExpiry = 15 * time.Minute

// TaskProducer enqueues background work.
type TaskProducer interface {
	ProduceTask(ctx context.Context, task tasks.Task) error
}

// SearchIndex is the full-text index of documents.
type SearchIndex interface {
	IndexDocument(ctx context.Context, doc model.EsDocument) error
	DeleteDocument(ctx context.Context, id uint) error
	Search(ctx context.Context, text, brand string, size int) ([]model.SearchHit, error)
}

// DocumentDeps are the optional integrations of DocumentService. A nil field
// disables the features that need it.
type DocumentDeps struct {
	Tasks   TaskProducer
	Search  SearchIndex
	Objects storage.ObjectStore
	LLM     llm.Client
}

// ReviseRequest is the body of POST /api/documents/:id/revise.
type ReviseRequest struct {
	Content       string `json:"content" binding:"required"`
	ChangeSummary string `json:"changeSummary"`
	RevisedBy     string `json:"revisedBy"`
}

// Attachment is an uploaded file.
type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentService interface {
	Tree(ctx context.Context, brand string) ([]*model.DocumentCategoryNode, error)
	Revise(ctx context.Context, id uint, req ReviseRequest) (*model.Document, error)
	UploadAttachment(ctx context.Context, id uint, file Attachment) (*model.Document, error)
	DownloadURL(ctx context.Context, id uint) (string, error)
	GenerateImprovement(ctx context.Context, id uint, improvementType string) (*model.AiDocumentImprovement, error)
	Search(ctx context.Context, text, brand string, size int) ([]model.SearchHit, error)
}

type documentService struct {
	store     *repository.Store
	crud      *CRUD
	publisher events.Publisher
	deps      DocumentDeps
}

// NewDocumentService builds the service and keeps the search index in step
// with document writes.
func NewDocumentService(store *repository.Store, crud *CRUD, publisher events.Publisher, deps DocumentDeps) DocumentService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	s := &documentService{store: store, crud: crud, publisher: publisher, deps: deps}
	crud.Documents.AfterWrite(s.reindex)
	crud.Documents.AfterDelete(s.unindex)
	return s
}

func (s *documentService) Tree(ctx context.Context, brand string) ([]*model.DocumentCategoryNode, error) {
	categories, err := s.store.DocumentCategories.List(ctx, repository.ByBrand(brand))
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(categories), nil
}

// BuildCategoryTree nests categories under their parents. Categories whose
// parent is missing from the input become roots.
func BuildCategoryTree(categories []model.DocumentCategory) []*model.DocumentCategoryNode {
	nodes := make(map[uint]*model.DocumentCategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &model.DocumentCategoryNode{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			ParentID:    c.ParentID,
			Children:    make([]*model.DocumentCategoryNode, 0),
		}
	}
	roots := make([]*model.DocumentCategoryNode, 0)
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID != nil && *c.ParentID != c.ID {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (s *documentService) Revise(ctx context.Context, id uint, req ReviseRequest) (*model.Document, error) {
	var (
		updated  *model.Document
		revision *model.DocumentRevision
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		doc, err := tx.Documents.Get(ctx, id)
		if err != nil {
			return err
		}
		version := doc.Version
		if version < 1 {
			version = 1
		}
		revision = &model.DocumentRevision{
			Brand:         doc.Brand,
			DocumentID:    doc.ID,
			Version:       version,
			Content:       doc.Content,
			ChangeSummary: req.ChangeSummary,
			RevisedBy:     req.RevisedBy,
		}
		if err := tx.DocumentRevisions.Create(ctx, revision); err != nil {
			return fmt.Errorf("store revision: %w", err)
		}
		patch := &model.Document{Content: req.Content, Version: version + 1}
		updated, err = tx.Documents.Update(ctx, id, patch, []string{"Content", "Version"})
		return err
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s.publisher.Publish(ctx, events.Event{Resource: s.crud.DocumentRevisions.Resource(), Action: events.ActionCreated, ID: revision.ID, Brand: revision.Brand, At: now})
	s.publisher.Publish(ctx, events.Event{Resource: s.crud.Documents.Resource(), Action: events.ActionUpdated, ID: updated.ID, Brand: updated.Brand, At: now})
	s.reindex(ctx, updated)
	return updated, nil
}

// AttachmentKey is the object key of a document attachment.
func AttachmentKey(brand string, id uint, fileName string) string {
	return fmt.Sprintf("documents/%s/%d/%s", brand, id, path.Base(strings.ReplaceAll(fileName, "\\", "/")))
}

func (s *documentService) UploadAttachment(ctx context.Context, id uint, file Attachment) (*model.Document, error) {
	if s.deps.Objects == nil {
		return nil, fmt.Errorf("%w: object storage", ErrIntegrationDisabled)
	}
	doc, err := s.crud.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	key := AttachmentKey(doc.Brand, doc.ID, file.FileName)
	if err := s.deps.Objects.Put(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}
	patch := &model.Document{AttachmentKey: key, AttachmentName: path.Base(key)}
	// AfterWrite enqueues the indexing task once the key is stored.
	return s.crud.Documents.Update(ctx, id, patch, []string{"AttachmentKey", "AttachmentName"})
}

func (s *documentService) DownloadURL(ctx context.Context, id uint) (string, error) {
	if s.deps.Objects == nil {
		return "", fmt.Errorf("%w: object storage", ErrIntegrationDisabled)
	}
	doc, err := s.crud.Documents.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if doc.AttachmentKey == "" {
		return "", fmt.Errorf("document %d has no attachment: %w", id, repository.ErrNotFound)
	}
	return s.deps.Objects.PresignedURL(ctx, doc.AttachmentKey, DownloadURLExpiry)
}

const improvementPrompt = `You review internal knowledge base articles. Suggest one concrete %s improvement for the article below. Reply with the suggestion only, in plain text.`

func (s *documentService) GenerateImprovement(ctx context.Context, id uint, improvementType string) (*model.AiDocumentImprovement, error) {
	if s.deps.LLM == nil {
		return nil, fmt.Errorf("%w: llm", ErrIntegrationDisabled)
	}
	doc, err := s.crud.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if improvementType == "" {
		improvementType = "clarity"
	}
	suggestion, err := s.deps.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(improvementPrompt, improvementType)},
		{Role: "user", Content: fmt.Sprintf("Title: %s\n\n%s", doc.Title, doc.Content)},
	})
	if err != nil {
		return nil, fmt.Errorf("generate improvement: %w", err)
	}
	if suggestion == "" {
		return nil, fmt.Errorf("generate improvement: empty completion")
	}
	improvement := &model.AiDocumentImprovement{
		Brand:           doc.Brand,
		DocumentID:      doc.ID,
		ImprovementType: improvementType,
		Suggestion:      suggestion,
		Status:          model.ImprovementPending,
	}
	if err := s.crud.AiDocumentImprovements.Create(ctx, improvement); err != nil {
		return nil, err
	}
	return improvement, nil
}

func (s *documentService) Search(ctx context.Context, text, brand string, size int) ([]model.SearchHit, error) {
	if s.deps.Search == nil {
		return nil, fmt.Errorf("%w: search", ErrIntegrationDisabled)
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return s.deps.Search.Search(ctx, text, brand, size)
}

// reindex pushes doc to the search index. Documents with an attachment go
// through the pipeline so the extracted text is kept.
func (s *documentService) reindex(ctx context.Context, doc *model.Document) {
	if doc.AttachmentKey != "" && s.deps.Tasks != nil {
		task := tasks.Task{
			Type: tasks.TypeDocumentIndex,
			DocumentIndex: &tasks.DocumentIndexTask{
				DocumentID: doc.ID,
				Brand:      doc.Brand,
				ObjectKey:  doc.AttachmentKey,
				FileName:   doc.AttachmentName,
			},
		}
		if err := s.deps.Tasks.ProduceTask(ctx, task); err != nil {
			log.Warnf("failed to enqueue indexing of document %d: %v", doc.ID, err)
		}
		return
	}
	if s.deps.Search == nil {
		return
	}
	if err := s.deps.Search.IndexDocument(ctx, model.NewEsDocument(doc)); err != nil {
		log.Warnf("failed to index document %d: %v", doc.ID, err)
	}
}

func (s *documentService) unindex(ctx context.Context, id uint) {
	if s.deps.Search == nil {
		return
	}
	if err := s.deps.Search.DeleteDocument(ctx, id); err != nil {
		log.Warnf("failed to remove document %d from index: %v", id, err)
	}
}
