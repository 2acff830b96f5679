package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fooding/internal/config"
	"fooding/internal/repositories"
	"fooding/internal/services"
	mem "fooding/pkg/memcache"
	"fooding/pkg/middleware"
	"fooding/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService,
	provideAccountRepo,
	provideTokenIssuer,
	provideOAuthExchanger,
	provideAuthenticator)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Session.Secret, cfg.Session.TTL)
}

func provideOAuthExchanger(cfg config.Config) services.OAuthExchanger {
	return services.NewGoogleOAuthExchanger(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, cfg.OAuth.RedirectURL)
}

func provideAuthenticator(issuer *utils.TokenIssuer, revoked mem.RevocationStore) *middleware.Authenticator {
	return middleware.NewAuthenticator(issuer, revoked)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	issuer *utils.TokenIssuer,
	revoked mem.RevocationStore,
	oauth services.OAuthExchanger,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, issuer, revoked, oauth, logger.Named("account"))
}
