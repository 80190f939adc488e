package service

import (
	"context"

	"github.com/rs/zerolog"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"
)

type MenuService struct {
	repo repository.MenuRepositoryInterface
	lg   zerolog.Logger
}

func NewMenuService(repo repository.MenuRepositoryInterface, lg zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, lg: lg}
}

func (s *MenuService) Add(ctx context.Context, req domain.MenuItemCreateRequest) (domain.MenuItemRecord, error) {
	var zero domain.MenuItemRecord

	if req.Name == "" {
		return zero, domain.Validationf("item name is required")
	}
	if req.Price <= 0 {
		return zero, domain.Validationf("price must be greater than 0")
	}

	_, ok, err := s.repo.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return zero, domain.Storage("lookup category", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "category", ID: req.CategoryID}
	}

	id, err := s.repo.CreateMenuItem(ctx, req)
	if err != nil {
		return zero, domain.Storage("create menu item", err)
	}
	s.lg.Info().Int64("item_id", id).Str("name", req.Name).Msg("menu item added")

	rec, _, err := s.repo.GetMenuItemRecord(ctx, id)
	if err != nil {
		return zero, domain.Storage("load menu item", err)
	}
	return rec, nil
}

// Update applies partial-PATCH semantics: only supplied fields change, and
// at least one must be supplied.
func (s *MenuService) Update(ctx context.Context, req domain.MenuItemUpdateRequest) (domain.MenuItemRecord, error) {
	var zero domain.MenuItemRecord

	if req.Price == nil && req.Available == nil && req.Description == nil {
		return zero, domain.Validationf("no updates specified: supply a price, availability, or description")
	}
	if req.Price != nil && *req.Price <= 0 {
		return zero, domain.Validationf("price must be greater than 0")
	}

	_, ok, err := s.repo.GetMenuItem(ctx, req.ItemID)
	if err != nil {
		return zero, domain.Storage("lookup menu item", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "menu item", ID: req.ItemID}
	}

	if err := s.repo.UpdateMenuItem(ctx, req); err != nil {
		return zero, domain.Storage("update menu item", err)
	}

	rec, _, err := s.repo.GetMenuItemRecord(ctx, req.ItemID)
	if err != nil {
		return zero, domain.Storage("load menu item", err)
	}
	s.lg.Info().Int64("item_id", req.ItemID).Msg("menu item updated")
	return rec, nil
}

func (s *MenuService) List(ctx context.Context, category string) ([]domain.MenuItemRecord, error) {
	items, err := s.repo.ListMenu(ctx, category)
	if err != nil {
		return nil, domain.Storage("list menu", err)
	}
	return items, nil
}

func (s *MenuService) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.Storage("list categories", err)
	}
	return cats, nil
}
