package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"konusturk-be/internal/entity"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/model"
	"konusturk-be/internal/repository/contract"
	"konusturk-be/pkg/kvstore"
)

type ChatSessionRepositoryImpl struct {
	store  kvstore.Store
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(store kvstore.Store) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		store:  store,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) readAll(ctx context.Context) ([]model.ChatSession, error) {
	raw, err := r.store.Read(ctx, kvstore.ChatSessionsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.ChatSession{}, nil
	}
	var sessions []model.ChatSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("corrupt chat sessions collection: %w", err)
	}
	return sessions, nil
}

func (r *ChatSessionRepositoryImpl) writeAll(ctx context.Context, sessions []model.ChatSession) error {
	return r.store.Write(ctx, kvstore.ChatSessionsKey, sessions)
}

func (r *ChatSessionRepositoryImpl) FindAllByUser(ctx context.Context, userId string) ([]entity.ChatSession, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]model.ChatSession, 0, len(all))
	for i := range all {
		if all[i].UserId == userId {
			owned = append(owned, all[i])
		}
	}
	// Stable: equal timestamps keep their storage order.
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})
	return r.mapper.ChatSessionsToEntities(owned), nil
}

func (r *ChatSessionRepositoryImpl) FindById(ctx context.Context, id string) (*entity.ChatSession, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Id == id {
			return r.mapper.ChatSessionToEntity(&all[i]), nil
		}
	}
	return nil, nil
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, *r.mapper.ChatSessionToModel(session))
	return r.writeAll(ctx, all)
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Id == session.Id {
			all[i] = *r.mapper.ChatSessionToModel(session)
			return r.writeAll(ctx, all)
		}
	}
	return entity.ErrSessionNotFound
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.ChatSession, 0, len(all))
	for i := range all {
		if all[i].Id != id {
			kept = append(kept, all[i])
		}
	}
	return r.writeAll(ctx, kept)
}
