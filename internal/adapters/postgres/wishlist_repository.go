package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// WishlistRepository реализует WishlistStorePort поверх PostgreSQL.
// Запись хранится как JSONB, чтобы схема не зависела от состава
// полей объекта; порядок добавления сохраняется через added_at.
type WishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) (*WishlistRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database pool cannot be nil")
	}
	return &WishlistRepository{db: db}, nil
}

// EnsureSchema создает таблицу избранного, если ее еще нет.
func (r *WishlistRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS wishlist_items (
			property_id BIGINT PRIMARY KEY,
			record JSONB NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create wishlist_items table: %w", err)
	}
	return nil
}

func (r *WishlistRepository) List(ctx context.Context) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	query := `SELECT record FROM wishlist_items ORDER BY added_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error("Failed to query wishlist items", err, nil)
		return nil, fmt.Errorf("failed to query wishlist items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.PropertyRecord, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist row: %w", err)
		}
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlist rows: %w", err)
	}
	return items, nil
}

func (r *WishlistRepository) Contains(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE property_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check wishlist item %d: %w", id, err)
	}
	return exists, nil
}

// Toggle удаляет объект, если он уже в избранном, иначе добавляет.
// Обе ветви идут в одной транзакции, после чего возвращается
// актуальная последовательность.
func (r *WishlistRepository) Toggle(ctx context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE property_id = $1)`
	if err := tx.QueryRow(ctx, checkQuery, property.ID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check wishlist item %d: %w", property.ID, err)
	}

	if exists {
		if _, err := tx.Exec(ctx, `DELETE FROM wishlist_items WHERE property_id = $1`, property.ID); err != nil {
			return nil, fmt.Errorf("failed to delete wishlist item %d: %w", property.ID, err)
		}
	} else {
		raw, err := encodeRecord(property)
		if err != nil {
			return nil, err
		}
		insertQuery := `INSERT INTO wishlist_items (property_id, record) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, insertQuery, property.ID, raw); err != nil {
			return nil, fmt.Errorf("failed to insert wishlist item %d: %w", property.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit wishlist toggle: %w", err)
	}

	logger.Debug("Wishlist item toggled", port.Fields{
		"property_id": property.ID,
		"removed":     exists,
	})
	return r.List(ctx)
}

func (r *WishlistRepository) Remove(ctx context.Context, id int64) ([]domain.PropertyRecord, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE property_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete wishlist item %d: %w", id, err)
	}
	return r.List(ctx)
}

// Формат JSONB-колонки совпадает с форматом файлового хранилища,
// чтобы переключение WISHLIST_STORAGE не меняло представление данных.
type wishlistRecord struct {
	ID               int64    `json:"id"`
	PropertyTitle    string   `json:"propertyTitle"`
	Description      string   `json:"description,omitempty"`
	Location         string   `json:"location"`
	PropertyCategory string   `json:"propertyCategory"`
	PropertyType     string   `json:"propertyType"`
	Price            float64  `json:"price"`
	DiscountPercent  float64  `json:"discountPercent"`
	SquareFeet       float64  `json:"squareFeet"`
	ImageURLs        []string `json:"imageUrls,omitempty"`
}

func encodeRecord(p domain.PropertyRecord) ([]byte, error) {
	raw, err := json.Marshal(wishlistRecord{
		ID:               p.ID,
		PropertyTitle:    p.PropertyTitle,
		Description:      p.Description,
		Location:         p.Location,
		PropertyCategory: p.PropertyCategory,
		PropertyType:     string(p.PropertyType),
		Price:            p.Price,
		DiscountPercent:  p.DiscountPercent,
		SquareFeet:       p.SquareFeet,
		ImageURLs:        p.ImageURLs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode wishlist record %d: %w", p.ID, err)
	}
	return raw, nil
}

func decodeRecord(raw []byte) (domain.PropertyRecord, error) {
	var record wishlistRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.PropertyRecord{}, fmt.Errorf("failed to decode wishlist record: %w", err)
	}
	return domain.PropertyRecord{
		ID:               record.ID,
		PropertyTitle:    record.PropertyTitle,
		Description:      record.Description,
		Location:         record.Location,
		PropertyCategory: record.PropertyCategory,
		PropertyType:     domain.Segment(record.PropertyType),
		Price:            record.Price,
		DiscountPercent:  record.DiscountPercent,
		SquareFeet:       record.SquareFeet,
		ImageURLs:        record.ImageURLs,
	}, nil
}
