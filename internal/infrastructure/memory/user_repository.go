package memory

import (
	"slices"
	"strings"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct {
	a accessor
}

// NewUserRepository crea el repositorio sobre el estado compartido.
func NewUserRepository(s *State) *UserRepo {
	return &UserRepo{a: s}
}

func (r *UserRepo) Create(u *entity.User) error {
	return r.a.with(func(d *dataset) error {
		email := strings.TrimSpace(u.Email)
		for _, existing := range d.users {
			if strings.EqualFold(existing.Email, email) {
				return domain.ErrEmailAlreadyExists
			}
		}
		d.users = append(d.users, copyUser(u))
		return nil
	})
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	err := r.a.with(func(d *dataset) error {
		out = make([]*entity.User, 0, len(d.users))
		for _, u := range d.users {
			out = append(out, copyUser(u))
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) Delete(id string) error {
	return r.a.with(func(d *dataset) error {
		d.users = slices.DeleteFunc(d.users, func(u *entity.User) bool { return u.ID == id })
		return nil
	})
}

func (r *UserRepo) find(match func(u *entity.User) bool) (*entity.User, error) {
	var out *entity.User
	err := r.a.with(func(d *dataset) error {
		if i := slices.IndexFunc(d.users, match); i >= 0 {
			out = copyUser(d.users[i])
		}
		return nil
	})
	return out, err
}
