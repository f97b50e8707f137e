package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"konusturk-be/internal/entity"
	"konusturk-be/internal/mapper"
	"konusturk-be/internal/model"
	"konusturk-be/internal/repository/contract"
	"konusturk-be/pkg/kvstore"
)

type UserRepositoryImpl struct {
	store  kvstore.Store
	mapper *mapper.UserMapper
}

func NewUserRepository(store kvstore.Store) contract.UserRepository {
	return &UserRepositoryImpl{
		store:  store,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) readAll(ctx context.Context) ([]model.User, error) {
	raw, err := r.store.Read(ctx, kvstore.UsersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.User{}, nil
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("corrupt users collection: %w", err)
	}
	return users, nil
}

func (r *UserRepositoryImpl) writeAll(ctx context.Context, users []model.User) error {
	return r.store.Write(ctx, kvstore.UsersKey, users)
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]entity.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(users), nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return r.mapper.ToEntity(&users[i]), nil
		}
	}
	return nil, nil
}

func (r *UserRepositoryImpl) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return r.mapper.ToEntity(&users[i]), nil
		}
	}
	return nil, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *r.mapper.ToModel(user))
	return r.writeAll(ctx, users)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Id == user.Id {
			users[i] = *r.mapper.ToModel(user)
			return r.writeAll(ctx, users)
		}
	}
	return entity.ErrUserNotFound
}

func (r *UserRepositoryImpl) CurrentUser(ctx context.Context) (*entity.User, error) {
	raw, err := r.store.Read(ctx, kvstore.CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("corrupt current-user record: %w", err)
	}
	return r.mapper.ToEntity(&user), nil
}

func (r *UserRepositoryImpl) SetCurrentUser(ctx context.Context, user *entity.User) error {
	return r.store.Write(ctx, kvstore.CurrentUserKey, r.mapper.ToModel(user))
}

func (r *UserRepositoryImpl) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, kvstore.CurrentUserKey)
}
