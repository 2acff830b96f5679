package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fooding/internal/models/db_models"
	"fooding/internal/models/request_models"
	"fooding/internal/models/response_models"
	"fooding/internal/repositories"
	mem "fooding/pkg/memcache"
	"fooding/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error)
	OAuthLogin(ctx context.Context, code string) (*response_models.SessionResponse, error)
	Logout(tokenID string, expiresAt time.Time)
	CurrentUser(ctx context.Context, email string) (*response_models.AccountResponse, error)
	Onboard(ctx context.Context, email string, request request_models.OnboardingRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	revoked     mem.RevocationStore
	oauth       OAuthExchanger
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	revoked mem.RevocationStore,
	oauth OAuthExchanger,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		oauth:       oauth,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)
	if email == "" || request.Password == "" || strings.TrimSpace(request.Username) == "" {
		return nil, utils.ErrMissingFields
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Username:     strings.TrimSpace(request.Username),
		Email:        email,
		PasswordHash: hashedPassword,
		Provider:     db_models.ProviderPassword,
		Weight:       request.Weight,
		Height:       request.Height,
		Age:          request.Age,
		Gender:       request.Gender,
	}

	if err := a.accountRepo.CreateWithPantry(ctx, newAccount); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.logger.Info("account registered", zap.String("email", email))
	resp := response_models.NewAccountResponse(newAccount)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueSession(account)
}

func (a *AccountService) OAuthLogin(ctx context.Context, code string) (*response_models.SessionResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, utils.ErrMissingFields
	}

	profile, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrOAuthExchange, err)
	}
	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: provider returned no email", utils.ErrOAuthExchange)
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		account = &db_models.Account{
			Username: profile.Name,
			Email:    email,
			Provider: db_models.ProviderGoogle,
		}
		err := a.accountRepo.CreateWithPantry(ctx, account)
		if errors.Is(err, repositories.ErrDuplicateKey) {
			// Lost a race with a concurrent first login.
			account, err = a.accountRepo.FindByEmail(ctx, email)
			if err == nil && account == nil {
				err = errors.New("account vanished after duplicate insert")
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		a.logger.Info("account created from oauth login", zap.String("email", email))
	}

	return a.issueSession(account)
}

func (a *AccountService) issueSession(account *db_models.Account) (*response_models.SessionResponse, error) {
	token, expiresAt, err := a.tokens.CreateToken(account.Email)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &response_models.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Account:   response_models.NewAccountResponse(account),
	}, nil
}

func (a *AccountService) Logout(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(a.tokens.TTL())
	}
	a.revoked.Revoke(tokenID, expiresAt)
}

func (a *AccountService) CurrentUser(ctx context.Context, email string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) Onboard(ctx context.Context, email string, request request_models.OnboardingRequest) (*response_models.AccountResponse, error) {
	updates := map[string]any{}
	if request.Username != nil {
		if strings.TrimSpace(*request.Username) == "" {
			return nil, utils.ErrMissingFields
		}
		updates["username"] = strings.TrimSpace(*request.Username)
	}
	if request.Weight != nil {
		updates["weight"] = *request.Weight
	}
	if request.Height != nil {
		updates["height"] = *request.Height
	}
	if request.Age != nil {
		updates["age"] = *request.Age
	}
	if request.Birthday != nil {
		updates["birthday"] = *request.Birthday
	}
	if request.Gender != nil {
		updates["gender"] = *request.Gender
	}
	if len(updates) == 0 {
		return nil, utils.ErrMissingFields
	}

	account, err := a.accountRepo.UpdateProfile(ctx, email, updates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}
