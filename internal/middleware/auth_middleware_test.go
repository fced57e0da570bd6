package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/pkg/auth"
)

func testAuthMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniforum.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func protectedRouter(m *AuthMiddleware, role models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", m.JWTAuth(), m.RoleRequired(role))
	group.GET("/protected", func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"username": actor.Username})
	})
	return router
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	user := &models.User{ID: 1, Username: "s.kaya", Role: role}
	accessToken, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuth_ValidTokenReachesHandler(t *testing.T) {
	m, jwtService := testAuthMiddleware()
	router := protectedRouter(m, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "s.kaya")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	m, _ := testAuthMiddleware()
	router := protectedRouter(m, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	m, _ := testAuthMiddleware()
	router := protectedRouter(m, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired_WrongRole(t *testing.T) {
	m, jwtService := testAuthMiddleware()
	router := protectedRouter(m, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleFaculty))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
