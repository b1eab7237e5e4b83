package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid actor headers", http.StatusUnauthorized)

// RequireActor resolves the acting identity from the X-Actor-Id and
// X-Actor-Role headers and aborts with 401 when either is missing or the
// role is unknown. Handlers downstream read the actor via ActorFrom.
//
// The headers are trusted as-is; authenticating them is the API gateway's
// job, not this service's.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		role := entities.Role(strings.TrimSpace(c.GetHeader(HeaderActorRole)))

		if id == "" || !role.IsValid() {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		c.Set(actorContextKey, entities.Actor{ID: id, Role: role})
		c.Next()
	}
}

// ActorFrom returns the actor resolved by RequireActor. The zero value comes
// back only on routes that skipped the middleware.
func ActorFrom(c *gin.Context) entities.Actor {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}
	}
	actor, _ := v.(entities.Actor)
	return actor
}
