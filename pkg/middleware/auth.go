package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	mem "fooding/pkg/memcache"
	"fooding/pkg/utils"
)

const (
	SessionCookie = "session"
	identityKey   = "identity"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type Authenticator struct {
	issuer  *utils.TokenIssuer
	revoked mem.RevocationStore
}

func NewAuthenticator(issuer *utils.TokenIssuer, revoked mem.RevocationStore) *Authenticator {
	return &Authenticator{issuer: issuer, revoked: revoked}
}

// RequireAuth rejects requests without a valid, unrevoked session.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not logged in")
			c.Abort()
			return
		}

		id, ok := a.identify(tokenString)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid session is present and
// lets anonymous requests through.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if id, ok := a.identify(tokenString); ok {
				c.Set(identityKey, id)
			}
		}
		c.Next()
	}
}

func (a *Authenticator) identify(tokenString string) (Identity, bool) {
	claims, err := a.issuer.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, false
	}
	if a.revoked.IsRevoked(claims.ID) {
		return Identity{}, false
	}
	id := Identity{Email: claims.Subject, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, true
}

// IdentityFrom returns the caller set by RequireAuth or OptionalAuth.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
