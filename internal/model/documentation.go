package model

import "time"

// DocumentCategory is a node in the self-referencing category tree.
type DocumentCategory struct {
	Base
	Brand       string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ParentID    *uint  `gorm:"index" json:"parentId"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
}

func (DocumentCategory) TableName() string { return "document_categories" }

// DocumentCategoryNode is a DocumentCategory with its children, used to render the tree.
type DocumentCategoryNode struct {
	ID          uint                    `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	ParentID    *uint                   `json:"parentId"`
	Children    []*DocumentCategoryNode `json:"children"`
}

// Document statuses.
const (
	DocumentDraft     = "draft"
	DocumentPublished = "published"
	DocumentArchived  = "archived"
)

// Document is a knowledge base article.
type Document struct {
	Base
	Brand          string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	CategoryID     *uint      `gorm:"index" json:"categoryId"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Content        string     `gorm:"type:text" json:"content"`
	Summary        string     `gorm:"type:text" json:"summary"`
	Author         string     `gorm:"type:varchar(255)" json:"author"`
	Status         string     `gorm:"type:varchar(20)" json:"status" binding:"omitempty,oneof=draft published archived"`
	Version        int        `gorm:"not null" json:"version" binding:"gte=0"`
	Tags           StringList `json:"tags"`
	AttachmentKey  string     `gorm:"type:varchar(500)" json:"attachmentKey"`
	AttachmentName string     `gorm:"type:varchar(255)" json:"attachmentName"`
}

func (Document) TableName() string { return "documents" }

// DocumentRevision keeps a previous version of a Document's content.
type DocumentRevision struct {
	Base
	Brand         string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DocumentID    uint   `gorm:"index;not null" json:"documentId" binding:"required"`
	Version       int    `gorm:"not null" json:"version" binding:"required,gt=0"`
	Content       string `gorm:"type:text;not null" json:"content" binding:"required"`
	ChangeSummary string `gorm:"type:text" json:"changeSummary"`
	RevisedBy     string `gorm:"type:varchar(255)" json:"revisedBy"`
}

func (DocumentRevision) TableName() string { return "document_revisions" }

// DocumentFeedback is a reader rating of a Document.
type DocumentFeedback struct {
	Base
	Brand       string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DocumentID  uint   `gorm:"index;not null" json:"documentId" binding:"required"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment     string `gorm:"type:text" json:"comment"`
	SubmittedBy string `gorm:"type:varchar(255)" json:"submittedBy"`
	Helpful     bool   `gorm:"not null" json:"helpful"`
}

func (DocumentFeedback) TableName() string { return "document_feedback" }

// Improvement statuses.
const (
	ImprovementPending  = "pending"
	ImprovementAccepted = "accepted"
	ImprovementRejected = "rejected"
)

// AiDocumentImprovement is a machine generated suggestion for a Document.
type AiDocumentImprovement struct {
	Base
	Brand           string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DocumentID      uint    `gorm:"index;not null" json:"documentId" binding:"required"`
	ImprovementType string  `gorm:"type:varchar(50);not null" json:"improvementType" binding:"required"`
	Suggestion      string  `gorm:"type:text;not null" json:"suggestion" binding:"required"`
	Status          string  `gorm:"type:varchar(20)" json:"status" binding:"omitempty,oneof=pending accepted rejected"`
	Confidence      float64 `gorm:"type:decimal(4,2)" json:"confidence" binding:"gte=0,lte=1"`
}

func (AiDocumentImprovement) TableName() string { return "ai_document_improvements" }

// DocumentAnalytics is a daily usage record for a Document.
type DocumentAnalytics struct {
	Base
	Brand             string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DocumentID        uint       `gorm:"index;not null" json:"documentId" binding:"required"`
	Date              *time.Time `json:"date"`
	Views             int        `json:"views" binding:"gte=0"`
	UniqueViewers     int        `json:"uniqueViewers" binding:"gte=0"`
	AvgTimeSpent      float64    `gorm:"type:decimal(8,2)" json:"avgTimeSpent" binding:"gte=0"`
	SearchAppearances int        `json:"searchAppearances" binding:"gte=0"`
}

func (DocumentAnalytics) TableName() string { return "document_analytics" }
