package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"restaurant-admin/internal/domain"
)

type menuRepoStub struct {
	category   domain.Category
	categoryOK bool
	item       domain.MenuItem
	itemOK     bool
	record     domain.MenuItemRecord

	updates []domain.MenuItemUpdateRequest
	creates []domain.MenuItemCreateRequest
}

func (s *menuRepoStub) GetCategory(ctx context.Context, id int64) (domain.Category, bool, error) {
	return s.category, s.categoryOK, nil
}

func (s *menuRepoStub) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error) {
	return s.item, s.itemOK, nil
}

func (s *menuRepoStub) CreateMenuItem(ctx context.Context, req domain.MenuItemCreateRequest) (int64, error) {
	s.creates = append(s.creates, req)
	return 77, nil
}

func (s *menuRepoStub) UpdateMenuItem(ctx context.Context, req domain.MenuItemUpdateRequest) error {
	s.updates = append(s.updates, req)
	return nil
}

func (s *menuRepoStub) GetMenuItemRecord(ctx context.Context, id int64) (domain.MenuItemRecord, bool, error) {
	return s.record, true, nil
}

func (s *menuRepoStub) ListMenu(ctx context.Context, category string) ([]domain.MenuItemRecord, error) {
	return nil, nil
}

func (s *menuRepoStub) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func newMenuFixture() (*MenuService, *menuRepoStub) {
	repo := &menuRepoStub{
		category:   domain.Category{ID: 2, Name: "Entrees"},
		categoryOK: true,
		item:       domain.MenuItem{ID: 9, Name: "Grilled Salmon", Price: 28.99, Available: true},
		itemOK:     true,
		record: domain.MenuItemRecord{
			ID: 9, Name: "Grilled Salmon", Price: 29.99, Category: "Entrees", Available: true,
		},
	}
	return NewMenuService(repo, zerolog.Nop()), repo
}

func TestMenuUpdate(t *testing.T) {
	t.Run("no fields supplied", func(t *testing.T) {
		svc, repo := newMenuFixture()
		_, err := svc.Update(context.Background(), domain.MenuItemUpdateRequest{ItemID: 9})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.updates)
	})

	t.Run("non-positive price", func(t *testing.T) {
		svc, repo := newMenuFixture()
		price := 0.0
		_, err := svc.Update(context.Background(), domain.MenuItemUpdateRequest{ItemID: 9, Price: &price})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.updates)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, repo := newMenuFixture()
		repo.itemOK = false
		price := 29.99
		_, err := svc.Update(context.Background(), domain.MenuItemUpdateRequest{ItemID: 9, Price: &price})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("applies only supplied fields", func(t *testing.T) {
		svc, repo := newMenuFixture()
		price := 29.99
		rec, err := svc.Update(context.Background(), domain.MenuItemUpdateRequest{ItemID: 9, Price: &price})
		assert.NoError(t, err)
		assert.Len(t, repo.updates, 1)
		assert.NotNil(t, repo.updates[0].Price)
		assert.Nil(t, repo.updates[0].Available)
		assert.Nil(t, repo.updates[0].Description)
		assert.Equal(t, "Entrees", rec.Category)
	})
}

func TestMenuAdd(t *testing.T) {
	t.Run("price must be positive", func(t *testing.T) {
		svc, repo := newMenuFixture()
		_, err := svc.Add(context.Background(), domain.MenuItemCreateRequest{
			Name: "Tarte Tatin", Price: -1, CategoryID: 2,
		})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.creates)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, repo := newMenuFixture()
		repo.categoryOK = false
		_, err := svc.Add(context.Background(), domain.MenuItemCreateRequest{
			Name: "Tarte Tatin", Price: 11.99, CategoryID: 2,
		})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("created", func(t *testing.T) {
		svc, repo := newMenuFixture()
		_, err := svc.Add(context.Background(), domain.MenuItemCreateRequest{
			Name: "Tarte Tatin", Price: 11.99, CategoryID: 2,
		})
		assert.NoError(t, err)
		assert.Len(t, repo.creates, 1)
	})
}
