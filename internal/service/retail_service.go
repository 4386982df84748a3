package service

import (
	"context"
	"time"

	"bizops-dashboard/internal/model"
)

// AcknowledgeRequest is the body of POST /api/corporate-messages/:id/acknowledge.
type AcknowledgeRequest struct {
	StoreID        uint   `json:"storeId" binding:"required"`
	AcknowledgedBy string `json:"acknowledgedBy" binding:"required"`
	Notes          string `json:"notes"`
}

type RetailService interface {
	Acknowledge(ctx context.Context, messageID uint, req AcknowledgeRequest) (*model.MessageAcknowledgment, error)
}

type retailService struct {
	crud *CRUD
}

// NewRetailService writes through crud so acknowledgments publish change events.
func NewRetailService(crud *CRUD) RetailService {
	return &retailService{crud: crud}
}

func (s *retailService) Acknowledge(ctx context.Context, messageID uint, req AcknowledgeRequest) (*model.MessageAcknowledgment, error) {
	msg, err := s.crud.CorporateMessages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if _, err := s.crud.Stores.Get(ctx, req.StoreID); err != nil {
		return nil, err
	}
	ack := &model.MessageAcknowledgment{
		Brand:          msg.Brand,
		MessageID:      msg.ID,
		StoreID:        req.StoreID,
		AcknowledgedBy: req.AcknowledgedBy,
		AcknowledgedAt: model.TimePtr(time.Now().UTC()),
		Notes:          req.Notes,
	}
	if err := s.crud.MessageAcknowledgments.Create(ctx, ack); err != nil {
		return nil, err
	}
	return ack, nil
}
