package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/auth"
	"github.com/bcrservices/car-rental-api/internal/authz"
)

const ContextClaims = "claims"

// Authenticate extracts the bearer token, verifies it and attaches the
// claims to the request context. Fails closed with AuthenticationError.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperr.Authentication("missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, apperr.Authentication("invalid authorization header"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abort(c, apperr.Authentication("invalid or expired token"))
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// Require checks the embedded role of the authenticated claims against the
// operation's allow-list. Valid identity with an insufficient role fails
// with AuthorizationError.
func Require(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abort(c, apperr.Authentication("missing authentication"))
			return
		}

		if !authz.Allowed(op, authz.Role(claims.Role.Name)) {
			abort(c, apperr.Authorization("insufficient role"))
			return
		}

		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func abort(c *gin.Context, err error) {
	apperr.Respond(c, err)
	c.Abort()
}
