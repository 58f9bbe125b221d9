package repository

import "github.com/jhoicas/wellcomputer-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create falla con ErrEmailAlreadyExists si el email ya está registrado.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail compara el email sin distinguir mayúsculas.
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(id string) error
}
