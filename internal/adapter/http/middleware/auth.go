package middleware

import (
	"log"
	"net/http"
	"strings"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"
	"tradehub/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireIdentity resolves the bearer token on every request in the group
// and aborts with 401 when it is missing or invalid. Role, tier and
// ownership checks stay in the authorization gate; this middleware only
// answers "who is calling".
func RequireIdentity(authority interfaces.ISessionAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthenticated(c, "missing bearer token")
			return
		}

		ident, err := authority.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abortUnauthenticated(c, "invalid session token")
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// Identity returns the caller resolved by RequireIdentity.
func Identity(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	ident, ok := v.(entities.Identity)
	return ident, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthenticated(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
