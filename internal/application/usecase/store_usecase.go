package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

// StoreUseCase registro de sucursales. Alta, edición y baja requieren CanManageStores.
type StoreUseCase struct {
	repo repository.StoreRepository
	log  zerolog.Logger
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, log zerolog.Logger) *StoreUseCase {
	return &StoreUseCase{repo: repo, log: log}
}

func (uc *StoreUseCase) Create(actor entity.Role, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !access.CanManageStores(actor) {
		return nil, domain.ErrActionForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidRequest
	}
	store := &entity.Store{
		ID:      "s" + uuid.NewString(),
		Name:    name,
		Address: in.Address,
		Phone:   in.Phone,
		Active:  true,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	uc.log.Info().Str("store_id", store.ID).Msg("tienda creada")
	return toStoreResponse(store), nil
}

// Update reemplaza todos los campos de la tienda. Active nil conserva el valor actual.
func (uc *StoreUseCase) Update(actor entity.Role, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if !access.CanManageStores(actor) {
		return nil, domain.ErrActionForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidRequest
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrStoreNotFound
	}
	current.Name = name
	current.Address = in.Address
	current.Phone = in.Phone
	if in.Active != nil {
		current.Active = *in.Active
	}
	if err := uc.repo.Update(current); err != nil {
		return nil, err
	}
	uc.log.Info().Str("store_id", id).Msg("tienda actualizada")
	return toStoreResponse(current), nil
}

// Delete no revisa referencias: los productos de la tienda quedan sin sucursal.
func (uc *StoreUseCase) Delete(actor entity.Role, id string) error {
	if !access.CanManageStores(actor) {
		return domain.ErrActionForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("store_id", id).Msg("tienda eliminada")
	return nil
}

func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toStoreResponse(s), nil
}

func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	stores, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Active:  s.Active,
	}
}
