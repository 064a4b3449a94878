package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"savingsbook/internal/config"
	"savingsbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey     *rsa.PrivateKey
	publicKey      *rsa.PublicKey
	service        TokenServiceInterface
	issuer         string
	accessDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 8 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken("teller-01", models.RoleTeller)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(9 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_RejectsUnknownRole() {
	token, _, err := s.service.GenerateAccessToken("teller-01", "customer")
	s.ErrorIs(err, ErrInvalidRole)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_RejectsEmptySubject() {
	token, _, err := s.service.GenerateAccessToken("  ", models.RoleAdmin)
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	token, _, err := s.service.GenerateAccessToken("accountant-07", models.RoleAccountant)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal("accountant-07", claims.StaffID)
	s.Equal("accountant-07", claims.Subject)
	s.Equal(models.RoleAccountant, claims.Role)
	s.Equal(s.issuer, claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_InvalidFormat() {
	claims, err := s.service.ValidateAccessToken("invalid.token.format")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_MalformedToken() {
	claims, err := s.service.ValidateAccessToken("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongTokenType() {
	now := time.Now()
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   "teller-01",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		StaffID:   "teller-01",
		Role:      models.RoleTeller,
		TokenType: "refresh",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsHMAC() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer},
		Role:             models.RoleAdmin,
		TokenType:        TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestExpiredToken() {
	shortService := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: -time.Minute,
	})

	token, _, err := shortService.GenerateAccessToken("teller-01", models.RoleTeller)
	s.Require().NoError(err)

	claims, err := shortService.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestWrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              "another-branch",
		AccessTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateAccessToken("admin-01", models.RoleAdmin)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestDifferentKeys() {
	privateKey2, publicKey2, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey2,
		PublicKey:           publicKey2,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateAccessToken("admin-01", models.RoleAdmin)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase bearer", header: "bearer abc.def", want: "abc.def"},
		{name: "no prefix", header: "abc.def", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "prefix only", header: "Bearer", wantErr: true},
		{name: "prefix and space", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				s.Empty(token)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})

	token, _, err := ts.GenerateAccessToken("teller-01", models.RoleTeller)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.ValidateAccessToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
