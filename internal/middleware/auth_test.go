package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariananails/salon-booking/internal/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uint, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(staffOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	chain := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if staffOnly {
		chain = append(chain, StaffOnly())
	}
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})
	r.GET("/protegida", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := doGet(newAuthRouter(false), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	w := doGet(newAuthRouter(false), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_authorization_header")
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	tok := func() string {
		t2 := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": float64(1)})
		s, _ := t2.SignedString([]byte("otro-secreto"))
		return s
	}()
	w := doGet(newAuthRouter(false), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestAuthMiddleware_ValidTokenPopulatesContext(t *testing.T) {
	tok := signToken(t, testSecret, 7, "client")
	w := doGet(newAuthRouter(false), "Bearer "+tok)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"client"`)
}

func TestStaffOnly_RefusesClient(t *testing.T) {
	tok := signToken(t, testSecret, 7, "client")
	w := doGet(newAuthRouter(true), "Bearer "+tok)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "staff_only")
}

func TestStaffOnly_AllowsStaff(t *testing.T) {
	tok := signToken(t, testSecret, 3, "staff")
	w := doGet(newAuthRouter(true), "Bearer "+tok)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_SilentWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/", OptionalAuth(cfg), func(c *gin.Context) {
		_, logged := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"logged_in": logged})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logged_in":false`)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 7, "client"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"logged_in":true`)
}
