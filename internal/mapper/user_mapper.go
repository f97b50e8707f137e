package mapper

import (
	"konusturk-be/internal/entity"
	"konusturk-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		Password:     u.Password,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		TurkishLevel: u.TurkishLevel,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		Password:     u.Password,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		TurkishLevel: u.TurkishLevel,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToEntities(users []model.User) []entity.User {
	out := make([]entity.User, 0, len(users))
	for i := range users {
		out = append(out, *m.ToEntity(&users[i]))
	}
	return out
}

func (m *UserMapper) ToModels(users []entity.User) []model.User {
	out := make([]model.User, 0, len(users))
	for i := range users {
		out = append(out, *m.ToModel(&users[i]))
	}
	return out
}
