package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"restaurant-admin/internal/domain"
)

type MenuRepositoryInterface interface {
	GetCategory(ctx context.Context, id int64) (domain.Category, bool, error)
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error)
	CreateMenuItem(ctx context.Context, req domain.MenuItemCreateRequest) (int64, error)
	UpdateMenuItem(ctx context.Context, req domain.MenuItemUpdateRequest) error
	GetMenuItemRecord(ctx context.Context, id int64) (domain.MenuItemRecord, bool, error)
	ListMenu(ctx context.Context, category string) ([]domain.MenuItemRecord, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) GetCategory(ctx context.Context, id int64) (domain.Category, bool, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx, `
		SELECT category_id, name, COALESCE(description,'')
		FROM categories WHERE category_id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, false, nil
	}
	if err != nil {
		return domain.Category{}, false, fmt.Errorf("get category: %w", err)
	}
	return c, true, nil
}

func (r *MenuRepository) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error) {
	var m domain.MenuItem
	err := r.db.QueryRowContext(ctx, `
		SELECT item_id, name, COALESCE(description,''), price, category_id, is_available
		FROM menu_items WHERE item_id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, false, nil
	}
	if err != nil {
		return domain.MenuItem{}, false, fmt.Errorf("get menu item: %w", err)
	}
	return m, true, nil
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, req domain.MenuItemCreateRequest) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, price, category_id)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING item_id
	`, req.Name, req.Description, req.Price, req.CategoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}
	return id, nil
}

// UpdateMenuItem applies only the supplied fields. The caller guarantees at
// least one field is set.
func (r *MenuRepository) UpdateMenuItem(ctx context.Context, req domain.MenuItemUpdateRequest) error {
	var sets []string
	var args []any

	if req.Price != nil {
		args = append(args, *req.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if req.Available != nil {
		args = append(args, *req.Available)
		sets = append(sets, fmt.Sprintf("is_available = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}

	args = append(args, req.ItemID)
	query := fmt.Sprintf("UPDATE menu_items SET %s WHERE item_id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

func (r *MenuRepository) GetMenuItemRecord(ctx context.Context, id int64) (domain.MenuItemRecord, bool, error) {
	var rec domain.MenuItemRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT mi.item_id, mi.name, COALESCE(mi.description,''), mi.price, c.name, mi.is_available
		FROM menu_items mi
		JOIN categories c ON c.category_id = mi.category_id
		WHERE mi.item_id = $1
	`, id).Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.Category, &rec.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItemRecord{}, false, nil
	}
	if err != nil {
		return domain.MenuItemRecord{}, false, fmt.Errorf("get menu item record: %w", err)
	}
	return rec, true, nil
}

func (r *MenuRepository) ListMenu(ctx context.Context, category string) ([]domain.MenuItemRecord, error) {
	query := `
		SELECT mi.item_id, mi.name, COALESCE(mi.description,''), mi.price, c.name, mi.is_available
		FROM menu_items mi
		JOIN categories c ON c.category_id = mi.category_id`
	var args []any
	if category != "" {
		query += " WHERE c.name ILIKE $1"
		args = append(args, "%"+category+"%")
	}
	query += " ORDER BY c.name, mi.name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var out []domain.MenuItemRecord
	for rows.Next() {
		var rec domain.MenuItemRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.Category, &rec.Available); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category_id, name, COALESCE(description,'')
		FROM categories ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
