package model

// EsDocument is the shape of a Document as stored in the search index.
type EsDocument struct {
	DocumentID     uint       `json:"document_id"`
	Brand          string     `json:"brand"`
	Title          string     `json:"title"`
	Summary        string     `json:"summary"`
	Content        string     `json:"content"`
	AttachmentText string     `json:"attachment_text,omitempty"`
	AttachmentName string     `json:"attachment_name,omitempty"`
	Tags           StringList `json:"tags"`
	Status         string     `json:"status"`
}

// SearchHit is one full-text match returned to clients.
type SearchHit struct {
	DocumentID uint     `json:"documentId"`
	Brand      string   `json:"brand"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Score      float64  `json:"score"`
}

// NewEsDocument projects d into its index representation.
func NewEsDocument(d *Document) EsDocument {
	return EsDocument{
		DocumentID:     d.ID,
		Brand:          d.Brand,
		Title:          d.Title,
		Summary:        d.Summary,
		Content:        d.Content,
		AttachmentName: d.AttachmentName,
		Tags:           d.Tags,
		Status:         d.Status,
	}
}
