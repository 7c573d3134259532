package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webchat/internal/models"
	"webchat/internal/repositories"
	"webchat/internal/utils"
)

// SessionCookie carries the signed session token. The token is the sole
// source of auth truth and is re-validated on every request.
const SessionCookie = "session"

const contextUserKey = "currentUser"

type Auth struct {
	tokens *utils.TokenManager
	users  repositories.UserRepository
}

func NewAuth(tokens *utils.TokenManager, users repositories.UserRepository) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Authenticate resolves the request's user from the session cookie. Any
// failure, including a stale token for a deleted account, leaves the request
// anonymous rather than erroring.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		var email string
		if cached, found := utils.AuthCache.Get(tokenString); found {
			email = cached.(string)
		} else {
			var expiresAt time.Time
			email, expiresAt, err = a.tokens.Validate(tokenString)
			if err != nil {
				c.Next()
				return
			}
			// The cache entry must not outlive the token itself.
			ttl := time.Until(expiresAt)
			if ttl > time.Minute*5 {
				ttl = time.Minute * 5
			}
			if ttl > 0 {
				utils.AuthCache.Set(tokenString, email, ttl)
			}
		}

		user, err := a.users.FindByEmail(email)
		if err != nil {
			c.Next()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request resolved to no user. It runs
// before any data access on every protected route.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.String(http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(contextUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
