package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/store"
	"github.com/vinylkeeper/vinylkeeper/pkg/idx"
)

var ErrInvalidInput = errors.New("invalid_input")

// CollectionService manages a user's record collections. Every operation is
// scoped to the calling principal; acting on somebody else's collection
// reads as ErrNotFound so existence never leaks.
type CollectionService struct {
	Store store.Store
}

func (s *CollectionService) Create(ctx context.Context, callerUUID, name, description string, isPublic bool) (domain.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Collection{}, ErrInvalidInput
	}

	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.Collection{}, err
	}

	c := domain.Collection{
		ID:          idx.New().String(),
		OwnerID:     caller.ID,
		Name:        name,
		Description: strings.TrimSpace(description),
		IsPublic:    isPublic,
	}

	if err := s.Store.Collections().CreateCollection(ctx, c); err != nil {
		return domain.Collection{}, err
	}

	return s.Store.Collections().GetCollectionByID(ctx, c.ID)
}

// Get returns the collection when the caller owns it or it is public.
func (s *CollectionService) Get(ctx context.Context, callerUUID, id string) (domain.Collection, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return domain.Collection{}, err
	}

	c, err := s.Store.Collections().GetCollectionByID(ctx, id)
	if err != nil {
		return domain.Collection{}, err
	}

	if c.OwnerID != caller.ID && !c.IsPublic {
		return domain.Collection{}, store.ErrNotFound
	}

	return c, nil
}

func (s *CollectionService) List(ctx context.Context, callerUUID string) ([]domain.Collection, error) {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return nil, err
	}

	return s.Store.Collections().ListCollectionsByOwner(ctx, caller.ID)
}

// Delete removes an owned collection; albums cascade away with it.
func (s *CollectionService) Delete(ctx context.Context, callerUUID, id string) error {
	caller, err := resolveCaller(ctx, s.Store, callerUUID)
	if err != nil {
		return err
	}

	c, err := s.Store.Collections().GetCollectionByID(ctx, id)
	if err != nil {
		return err
	}

	if c.OwnerID != caller.ID {
		return store.ErrNotFound
	}

	return s.Store.Collections().DeleteCollection(ctx, id)
}
