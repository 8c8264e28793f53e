package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/logger"
)

// RoleAdmin is the authority admin-only routes require.
const RoleAdmin = "ROLE_ADMIN"

// RoleUser is the default authority granted at sign-up.
const RoleUser = "ROLE_USER"

// ExtractBearer returns the token from an Authorization header value, or ""
// when the header is absent or not a bearer credential. Anything that is not
// exactly "Bearer <token>" counts as absent.
func ExtractBearer(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// BearerAuthentication is the per-request authentication filter. It runs
// before any business logic, and it never rejects a request: it either
// installs a principal into the request context or leaves the request
// anonymous. Routing enforces authentication separately, so an invalid
// credential here is not a hard failure. Panics while validating are
// swallowed and treated as an invalid credential, never surfaced as a 500.
func BearerAuthentication(verifier *Verifier, log logger.Logger) gin.HandlerFunc {
	filterLog := log.WithComponent("auth_filter")
	return func(c *gin.Context) {
		func() {
			defer func() {
				if r := recover(); r != nil {
					filterLog.Error(c.Request.Context(), "cannot set request authentication", nil,
						logger.Fields{"panic": r})
				}
			}()

			tokenString := ExtractBearer(c.Request.Header.Get("Authorization"))
			if tokenString == "" {
				filterLog.Debug(c.Request.Context(), "no bearer credential on request")
				return
			}

			ctx := WithBearerToken(c.Request.Context(), tokenString)
			c.Request = c.Request.WithContext(ctx)

			if !verifier.Verify(ctx, tokenString) {
				// Invalid credential: the request proceeds anonymous and the
				// authorization gate rejects it if the route needs identity.
				return
			}

			principal, err := ResolvePrincipal(verifier, tokenString)
			if err != nil {
				filterLog.Warn(ctx, "verified token failed principal resolution", logger.Fields{"error": err.Error()})
				return
			}

			c.Request = c.Request.WithContext(WithPrincipal(ctx, principal))
			filterLog.Debug(c.Request.Context(), "authentication set", logger.Fields{"username": principal.Username})
		}()

		c.Next()
	}
}

// unauthorizedEntryPoint is the single place a 401 is emitted. Its only job
// is the fixed response body plus a log line with the denial reason.
func unauthorizedEntryPoint(c *gin.Context, log logger.Logger, reason string) {
	log.Warn(c.Request.Context(), "unauthorized request", logger.Fields{"reason": reason, "path": c.FullPath()})
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized request detected"})
}

// RequireAuthenticated gates routes that need any authenticated principal.
// Anonymous requests get 401 through the dedicated entry point.
func RequireAuthenticated(log logger.Logger) gin.HandlerFunc {
	gateLog := log.WithComponent("authorization_gate")
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c.Request.Context()); !ok {
			unauthorizedEntryPoint(c, gateLog, "no authenticated principal")
			return
		}
		c.Next()
	}
}

// RequireAuthority gates routes that need a specific role. A principal that
// is authenticated but lacks the role gets 403, never 401.
func RequireAuthority(authority string, log logger.Logger) gin.HandlerFunc {
	gateLog := log.WithComponent("authorization_gate")
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c.Request.Context())
		if !ok {
			unauthorizedEntryPoint(c, gateLog, "no authenticated principal")
			return
		}
		if !principal.HasAuthority(authority) {
			gateLog.Warn(c.Request.Context(), "forbidden request", logger.Fields{
				"username":  principal.Username,
				"authority": authority,
				"path":      c.FullPath(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}
