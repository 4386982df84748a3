package handler

import (
	"net/http"
	"strconv"

	"bizops-dashboard/internal/service"
	"bizops-dashboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// MaxAttachmentSize caps multipart uploads.
const MaxAttachmentSize = 50 << 20

// DocumentHandler serves the documentation endpoints beyond plain CRUD.
type DocumentHandler struct {
	docService service.DocumentService
}

func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// CategoryTree handles GET /api/tree/document-categories.
func (h *DocumentHandler) CategoryTree(c *gin.Context) {
	tree, err := h.docService.Tree(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, err, "Document category")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// Revise handles POST /api/documents/:id/revise.
func (h *DocumentHandler) Revise(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req service.ReviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	doc, err := h.docService.Revise(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UploadAttachment handles POST /api/documents/:id/attachment (multipart field "file").
func (h *DocumentHandler) UploadAttachment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxAttachmentSize)
	header, err := c.FormFile("file")
	if err != nil {
		log.Warnf("UploadAttachment: missing file for document %d: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "A file is required in the \"file\" form field"})
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	doc, err := h.docService.UploadAttachment(c.Request.Context(), id, service.Attachment{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	log.Infof("attachment %s stored for document %d", doc.AttachmentKey, id)
	c.JSON(http.StatusOK, doc)
}

// DownloadAttachment handles GET /api/documents/:id/attachment.
func (h *DocumentHandler) DownloadAttachment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	url, err := h.docService.DownloadURL(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Attachment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expiresIn": int(service.DownloadURLExpiry.Seconds())})
}

type generateImprovementRequest struct {
	ImprovementType string `json:"improvementType"`
}

// GenerateImprovement handles POST /api/documents/:id/ai-improvements/generate.
func (h *DocumentHandler) GenerateImprovement(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req generateImprovementRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	imp, err := h.docService.GenerateImprovement(c.Request.Context(), id, req.ImprovementType)
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusCreated, imp)
}

// Search handles GET /api/search/documents?q=&brand=&size=.
func (h *DocumentHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter q is required"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		size = 20
	}
	hits, err := h.docService.Search(c.Request.Context(), q, c.Query("brand"), size)
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusOK, hits)
}
