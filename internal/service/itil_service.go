package service

import (
	"context"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
)

// Edges splits the relationships touching one node by direction.
// Upstream edges have the node as child, downstream edges have it as parent.
type Edges[T any] struct {
	Upstream   []T `json:"upstream"`
	Downstream []T `json:"downstream"`
}

type ITILService interface {
	ServiceDependencies(ctx context.Context, serviceID uint) (*Edges[model.ServiceRelationship], error)
	CIRelationships(ctx context.Context, ciID uint) (*Edges[model.CiRelationship], error)
}

type itilService struct {
	store *repository.Store
}

func NewITILService(store *repository.Store) ITILService {
	return &itilService{store: store}
}

func (s *itilService) ServiceDependencies(ctx context.Context, serviceID uint) (*Edges[model.ServiceRelationship], error) {
	if _, err := s.store.ItilServices.Get(ctx, serviceID); err != nil {
		return nil, err
	}
	return edges(ctx, s.store.ServiceRelationships, "parent_service_id", "child_service_id", serviceID)
}

func (s *itilService) CIRelationships(ctx context.Context, ciID uint) (*Edges[model.CiRelationship], error) {
	if _, err := s.store.ConfigurationItems.Get(ctx, ciID); err != nil {
		return nil, err
	}
	return edges(ctx, s.store.CiRelationships, "parent_ci_id", "child_ci_id", ciID)
}

func edges[T any](ctx context.Context, repo repository.CRUDRepository[T], parentCol, childCol string, id uint) (*Edges[T], error) {
	up, err := repo.List(ctx, repository.Filter{Where: map[string]any{childCol: id}})
	if err != nil {
		return nil, err
	}
	down, err := repo.List(ctx, repository.Filter{Where: map[string]any{parentCol: id}})
	if err != nil {
		return nil, err
	}
	return &Edges[T]{Upstream: up, Downstream: down}, nil
}
