package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"savingsbook/internal/config"
	"savingsbook/internal/handlers"
	"savingsbook/internal/models"
	"savingsbook/internal/services"
	"savingsbook/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) serve(h echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// Middleware responds through SendError and returns its nil result
	s.NoError(h(c))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken("teller-01", models.RoleTeller)
	s.Require().NoError(err)

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Equal("teller-01", c.Get(handlers.StaffIDContextKey))
		s.Equal(models.RoleTeller, c.Get(handlers.RoleContextKey))
		s.NotEmpty(c.Get("token_jti"))
		return s.okHandler(c)
	})

	rec := s.serve(handler, "Bearer "+token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "InvalidToken")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer invalid.jwt.token")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService(time.Millisecond)

	token, _, err := shortTokenService.GenerateAccessToken("teller-01", models.RoleTeller)
	s.Require().NoError(err)

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	rec := s.serve(RequireAuth(shortTokenService)(s.okHandler), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	other := s.createTokenService(time.Hour)

	token, _, err := other.GenerateAccessToken("admin-01", models.RoleAdmin)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService)(s.okHandler), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_FallsBackToSubject() {
	mockTokens := service_mocks.NewMockTokenServiceInterface(s.ctrl)
	mockTokens.EXPECT().ExtractTokenFromHeader("Bearer abc").Return("abc", nil)
	mockTokens.EXPECT().ValidateAccessToken("abc").Return(&models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "accountant-07", ID: "jti-1"},
		Role:             models.RoleAccountant,
	}, nil)

	handler := RequireAuth(mockTokens)(func(c echo.Context) error {
		s.Equal("accountant-07", c.Get(handlers.StaffIDContextKey))
		return s.okHandler(c)
	})

	rec := s.serve(handler, "Bearer abc")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingStaffID() {
	mockTokens := service_mocks.NewMockTokenServiceInterface(s.ctrl)
	mockTokens.EXPECT().ExtractTokenFromHeader(gomock.Any()).Return("abc", nil)
	mockTokens.EXPECT().ValidateAccessToken("abc").Return(&models.CustomClaims{Role: models.RoleTeller}, nil)

	rec := s.serve(RequireAuth(mockTokens)(s.okHandler), "Bearer abc")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Staff ID missing")
}

func (s *AuthMiddlewareSuite) withRole(role string, mw echo.MiddlewareFunc) int {
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if role != "" {
		c.Set(handlers.RoleContextKey, role)
	}

	s.NoError(mw(s.okHandler)(c))
	return rec.Code
}

func (s *AuthMiddlewareSuite) TestRequireRole_AuthorizedWithCorrectRole() {
	s.Equal(http.StatusOK, s.withRole(models.RoleAdmin, RequireRole(models.RoleAdmin)))
}

func (s *AuthMiddlewareSuite) TestRequireRole_UnauthorizedWithWrongRole() {
	s.Equal(http.StatusForbidden, s.withRole(models.RoleTeller, RequireRole(models.RoleAdmin)))
}

func (s *AuthMiddlewareSuite) TestRequireRole_MissingRoleInContext() {
	// Returns 401 when role is missing from context
	s.Equal(http.StatusUnauthorized, s.withRole("", RequireRole(models.RoleAdmin)))
}

func (s *AuthMiddlewareSuite) TestStaffRoleGuards() {
	testCases := []struct {
		name     string
		guard    echo.MiddlewareFunc
		role     string
		expected int
	}{
		{"admin passes admin guard", RequireAdmin(), models.RoleAdmin, http.StatusOK},
		{"teller blocked by admin guard", RequireAdmin(), models.RoleTeller, http.StatusForbidden},
		{"teller passes teller guard", RequireTeller(), models.RoleTeller, http.StatusOK},
		{"admin passes teller guard", RequireTeller(), models.RoleAdmin, http.StatusOK},
		{"accountant blocked by teller guard", RequireTeller(), models.RoleAccountant, http.StatusForbidden},
		{"accountant passes accountant guard", RequireAccountant(), models.RoleAccountant, http.StatusOK},
		{"admin passes accountant guard", RequireAccountant(), models.RoleAdmin, http.StatusOK},
		{"teller blocked by accountant guard", RequireAccountant(), models.RoleTeller, http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.withRole(tc.role, tc.guard))
		})
	}
}
