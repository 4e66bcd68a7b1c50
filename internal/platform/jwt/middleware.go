package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neswanths/Blinky/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which AuthRequired stores the
// authenticated user.
const ContextUser = "currentUser"

// TokenVerifier validates a bearer token and extracts the subject email.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder resolves a token subject to a stored user.
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマーが定義します。
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token and
// loads the referenced user. A token whose user no longer exists is rejected
// with the same 401 as an invalid token so that deleted accounts are not
// distinguishable from bad credentials.
func AuthRequired(tokens TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry, extract the subject email
		email, err := tokens.Verify(tokenStr)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		// 3. Re-resolve the user on every request; tokens outlive accounts
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
