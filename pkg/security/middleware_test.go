package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomovil/platform/pkg/logger"
)

func TestExtractBearer(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractBearer("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", ExtractBearer("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractBearer(""))
	assert.Equal(t, "", ExtractBearer("Basic dXNlcjpwYXNz"))
	assert.Equal(t, "", ExtractBearer("Bearer"))
}

// newTestRouter builds a minimal engine with the authentication filter and
// three routes: open, authenticated, and admin-only. The open route reports
// the principal it observed so tests can assert on the request identity.
func newTestRouter(t *testing.T) (*gin.Engine, *Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	verifier := NewVerifier(testSecret, log)

	engine := gin.New()
	engine.Use(BearerAuthentication(verifier, log))

	engine.GET("/whoami", func(c *gin.Context) {
		principal, ok := PrincipalFrom(c.Request.Context())
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": false, "username": principal.Username})
	})
	engine.GET("/private", RequireAuthenticated(log), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/admin", RequireAuthority(RoleAdmin, log), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return engine, NewIssuer(testSecret, 7)
}

func perform(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestFilterLeavesAnonymousRequestsAlone(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := perform(engine, "/whoami", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"anonymous":true`)
}

func TestFilterNeverRejectsInvalidCredentials(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := perform(engine, "/whoami", "not.a.token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"anonymous":true`)
}

func TestFilterInstallsPrincipal(t *testing.T) {
	engine, issuer := newTestRouter(t)

	token, err := issuer.IssueWithRoles("alice", []string{RoleUser})
	require.NoError(t, err)

	rec := perform(engine, "/whoami", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestProtectedRouteRejectsAnonymousWithFixedMessage(t *testing.T) {
	engine, _ := newTestRouter(t)

	for _, token := range []string{"", "broken.token.here"} {
		rec := perform(engine, "/private", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Unauthorized request detected"}`, rec.Body.String())
	}
}

func TestAdminRouteDistinguishes401From403(t *testing.T) {
	engine, issuer := newTestRouter(t)

	rec := perform(engine, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken, err := issuer.IssueWithRoles("bob", []string{RoleUser})
	require.NoError(t, err)
	rec = perform(engine, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())

	adminToken, err := issuer.IssueWithRoles("root", []string{RoleAdmin})
	require.NoError(t, err)
	rec = perform(engine, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSequentialRequestsDoNotLeakPrincipals(t *testing.T) {
	engine, issuer := newTestRouter(t)

	token, err := issuer.IssueWithRoles("alice", []string{RoleUser})
	require.NoError(t, err)

	rec := perform(engine, "/whoami", token)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)

	// The next request carries no credential and must not inherit alice.
	rec = perform(engine, "/whoami", "")
	assert.Contains(t, rec.Body.String(), `"anonymous":true`)
}
