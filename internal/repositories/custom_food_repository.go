package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fooding/internal/models/db_models"
)

type CustomFoodRepository interface {
	Create(ctx context.Context, food *db_models.CustomFood) error
	ListByOwner(ctx context.Context, email string) ([]db_models.CustomFood, error)
	// SearchByDescription matches descriptions containing query, ignoring case.
	SearchByDescription(ctx context.Context, email, query string) ([]db_models.CustomFood, error)
	Get(ctx context.Context, email string, id uuid.UUID) (*db_models.CustomFood, error)
	UpdateIngredients(ctx context.Context, email string, id uuid.UUID, ingredients []string) (bool, error)
}

type customFoodRepository struct {
	db *gorm.DB
}

func NewCustomFoodRepository(db *gorm.DB) CustomFoodRepository {
	return &customFoodRepository{db: db}
}

func (r *customFoodRepository) Create(ctx context.Context, food *db_models.CustomFood) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *customFoodRepository) ListByOwner(ctx context.Context, email string) ([]db_models.CustomFood, error) {
	var foods []db_models.CustomFood
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("created_at, id").
		Find(&foods).Error
	return foods, err
}

func (r *customFoodRepository) SearchByDescription(ctx context.Context, email, query string) ([]db_models.CustomFood, error) {
	var foods []db_models.CustomFood
	err := r.db.WithContext(ctx).
		Where("owner_email = ? AND description ILIKE ?", email, "%"+escapeLike(query)+"%").
		Order("created_at, id").
		Find(&foods).Error
	return foods, err
}

func (r *customFoodRepository) Get(ctx context.Context, email string, id uuid.UUID) (*db_models.CustomFood, error) {
	var food db_models.CustomFood
	err := r.db.WithContext(ctx).First(&food, "id = ? AND owner_email = ?", id, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *customFoodRepository) UpdateIngredients(ctx context.Context, email string, id uuid.UUID, ingredients []string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.CustomFood{}).
		Where("id = ? AND owner_email = ?", id, email).
		Update("ingredients", pq.StringArray(ingredients))
	return res.RowsAffected > 0, res.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
