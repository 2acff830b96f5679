package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fooding/internal/models/db_models"
)

type PantryRepository interface {
	// EnsurePantry returns the owner's pantry, creating it when absent.
	EnsurePantry(ctx context.Context, email string) (*db_models.Pantry, error)
	FindPantry(ctx context.Context, email string) (*db_models.Pantry, error)
	AddItem(ctx context.Context, item *db_models.PantryItem) error
	ListItems(ctx context.Context, email string) ([]db_models.PantryItem, error)
	GetItem(ctx context.Context, email string, id uuid.UUID) (*db_models.PantryItem, error)
	// AdjustQuantity adds delta when the result stays at least 1. It reports
	// whether a row was changed.
	AdjustQuantity(ctx context.Context, email string, id uuid.UUID, delta int) (bool, error)
	SetQuantity(ctx context.Context, email string, id uuid.UUID, quantity int) (bool, error)
	RemoveItem(ctx context.Context, email string, id uuid.UUID) (bool, error)
	CountItemsByOwner(ctx context.Context) (map[string]int64, error)
}

type pantryRepository struct {
	db *gorm.DB
}

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (p *pantryRepository) EnsurePantry(ctx context.Context, email string) (*db_models.Pantry, error) {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "owner_email"}}, DoNothing: true}).
		Create(&db_models.Pantry{OwnerEmail: email}).Error
	if err != nil {
		return nil, err
	}
	return p.FindPantry(ctx, email)
}

func (p *pantryRepository) FindPantry(ctx context.Context, email string) (*db_models.Pantry, error) {
	var pantry db_models.Pantry
	err := p.db.WithContext(ctx).First(&pantry, "owner_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pantry, nil
}

func (p *pantryRepository) AddItem(ctx context.Context, item *db_models.PantryItem) error {
	return p.db.WithContext(ctx).Create(item).Error
}

func (p *pantryRepository) ListItems(ctx context.Context, email string) ([]db_models.PantryItem, error) {
	var items []db_models.PantryItem
	err := p.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("created_at, id").
		Find(&items).Error
	return items, err
}

func (p *pantryRepository) GetItem(ctx context.Context, email string, id uuid.UUID) (*db_models.PantryItem, error) {
	var item db_models.PantryItem
	err := p.db.WithContext(ctx).First(&item, "id = ? AND owner_email = ?", id, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (p *pantryRepository) AdjustQuantity(ctx context.Context, email string, id uuid.UUID, delta int) (bool, error) {
	res := p.db.WithContext(ctx).
		Model(&db_models.PantryItem{}).
		Where("id = ? AND owner_email = ? AND quantity + ? >= 1", id, email, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected > 0, res.Error
}

func (p *pantryRepository) SetQuantity(ctx context.Context, email string, id uuid.UUID, quantity int) (bool, error) {
	res := p.db.WithContext(ctx).
		Model(&db_models.PantryItem{}).
		Where("id = ? AND owner_email = ?", id, email).
		Update("quantity", quantity)
	return res.RowsAffected > 0, res.Error
}

func (p *pantryRepository) RemoveItem(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	res := p.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, email).
		Delete(&db_models.PantryItem{})
	return res.RowsAffected > 0, res.Error
}

func (p *pantryRepository) CountItemsByOwner(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		OwnerEmail string
		Count      int64
	}
	err := p.db.WithContext(ctx).
		Model(&db_models.PantryItem{}).
		Select("owner_email, count(*) as count").
		Group("owner_email").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.OwnerEmail] = r.Count
	}
	return counts, nil
}
