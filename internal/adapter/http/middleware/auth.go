package middleware

import (
	"guytogo/internal/domain/entities"
	"guytogo/internal/infrastructure/security"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const actorKey = "acting_identity"

// TokenParser verifies a bearer token and returns who it speaks for.
type TokenParser interface {
	Parse(token string) (security.Subject, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// acting identity on the gin context.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}
		subject, err := tokens.Parse(raw)
		if err != nil {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.FullPath(), err)
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}
		c.Set(actorKey, subject)
		c.Next()
	}
}

// RequireAdmin lets through only the reserved administrator: role ADMIN on
// the stored identity and the configured admin email. Token claims are not
// trusted for this check.
func RequireAdmin(identities usecase.IIdentityUseCase, adminEmail string) gin.HandlerFunc {
	adminKey := entities.EmailKey(adminEmail)
	return func(c *gin.Context) {
		actor, ok := Actor(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}
		identity, err := identities.GetByID(c.Request.Context(), actor.UserID)
		if err != nil {
			log.Printf("[auth][middleware] admin lookup failed user_id=%s err=%v", actor.UserID, err)
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator access required", http.StatusForbidden))
			return
		}
		if identity.Role != entities.RoleAdmin || entities.EmailKey(identity.Email) != adminKey {
			log.Printf("[auth][middleware] admin access denied user_id=%s", actor.UserID)
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator access required", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

// Actor returns the identity set by RequireAuth.
func Actor(c *gin.Context) (security.Subject, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return security.Subject{}, false
	}
	s, ok := v.(security.Subject)
	return s, ok && s.UserID != ""
}

// SetActor is used by handler tests to skip token parsing.
func SetActor(c *gin.Context, s security.Subject) {
	c.Set(actorKey, s)
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
