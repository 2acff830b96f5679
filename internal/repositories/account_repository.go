package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fooding/internal/models/db_models"
)

type AccountRepository interface {
	// CreateWithPantry inserts the account together with its empty pantry.
	// It returns ErrDuplicateKey when the email is taken.
	CreateWithPantry(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, email string, updates map[string]any) (*db_models.Account, error)
	ListAll(ctx context.Context) ([]db_models.Account, error)
	DeleteWithoutEmail(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) CreateWithPantry(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		pantry := &db_models.Pantry{OwnerEmail: account.Email}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_email"}},
			DoNothing: true,
		}).Create(pantry).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateProfile(ctx context.Context, email string, updates map[string]any) (*db_models.Account, error) {
	if len(updates) > 0 {
		res := a.db.WithContext(ctx).
			Model(&db_models.Account{}).
			Where("email = ?", email).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
	}
	return a.FindByEmail(ctx, email)
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at").Find(&accounts).Error
	return accounts, err
}

// DeleteWithoutEmail removes malformed accounts and any pantry keyed by an
// empty owner.
func (a *accountRepository) DeleteWithoutEmail(ctx context.Context) (int64, error) {
	var deleted int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("email IS NULL OR email = ''").Delete(&db_models.Account{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Where("owner_email = ''").Delete(&db_models.Pantry{}).Error
	})
	return deleted, err
}
