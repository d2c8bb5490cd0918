package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salescrm/internal/domain"
	jwtsvc "salescrm/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(jwt *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(jwt))
	r.GET("/whoami", func(c *gin.Context) {
		p := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": string(p.Role), "admin": p.Admin})
	})
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := setupRouter(jwtsvc.New("test_secret_key_32_characters_min", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	r := setupRouter(jwtsvc.New("test_secret_key_32_characters_min", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_TOKEN", body.Error.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	r := setupRouter(jwtsvc.New("test_secret_key_32_characters_min", time.Hour))

	other := jwtsvc.New("another_secret_key_32_chars_long!", time.Hour)
	token, err := other.GenerateToken(5, "SELLER", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidTokenSetsPrincipal(t *testing.T) {
	jwt := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	r := setupRouter(jwt)

	token, err := jwt.GenerateToken(1, "MANAGER", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID    int64  `json:"id"`
		Role  string `json:"role"`
		Admin bool   `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "MANAGER", body.Role)
	assert.True(t, body.Admin)
}

func authorizeRouter(entity domain.Entity, action domain.Action, p domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", p.ID)
		c.Set("role", string(p.Role))
		c.Set("admin", p.Admin)
	})
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.Handle(http.MethodPost, "/target", Authorize(entity, action), handle)
	r.Handle(http.MethodDelete, "/target", Authorize(entity, action), handle)
	return r
}

func TestAuthorize_SupportCannotCreateContracts(t *testing.T) {
	r := authorizeRouter(domain.EntityContract, domain.ActionCreate, domain.Principal{ID: 3, Role: domain.RoleSupport})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/target", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorize_ContractDeleteDeniedForEveryone(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleManager, domain.RoleSeller, domain.RoleSupport} {
		r := authorizeRouter(domain.EntityContract, domain.ActionDelete, domain.Principal{ID: 1, Role: role, Admin: role == domain.RoleManager})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/target", nil))

		assert.Equal(t, http.StatusForbidden, w.Code, "role %s", role)
	}
}

func TestAuthorize_SellerCreatesEvents(t *testing.T) {
	r := authorizeRouter(domain.EntityEvent, domain.ActionCreate, domain.Principal{ID: 5, Role: domain.RoleSeller})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/target", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("admin", false) })
	r.GET("/users", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
