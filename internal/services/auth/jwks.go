package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoVerifier   = errors.New("no token verifier configured")
	ErrJWKSFetch    = errors.New("failed to fetch JWKS")
)

// Claims are the JWT claims the search API reads
type Claims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Role  string `json:"role"` // identity provider role, e.g. authenticated

	AppMetadata AppMetadata `json:"app_metadata"`

	jwt.RegisteredClaims
}

// AppMetadata holds the authorization attributes provisioned for a user
type AppMetadata struct {
	Role  string `json:"role"`
	OrgID string `json:"org_id"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kty string `json:"kty"` // Key type
	Kid string `json:"kid"` // Key ID
	Use string `json:"use"` // Public key use
	Alg string `json:"alg"` // Algorithm
	Crv string `json:"crv"` // Curve (for EC keys)
	X   string `json:"x"`   // X coordinate (for EC keys)
	Y   string `json:"y"`   // Y coordinate (for EC keys)
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// Config selects how tokens are verified. ES256 tokens are checked against
// JWKSURL; HS256 tokens against Secret. At least one verifier or the dev token
// must be configured.
type Config struct {
	JWKSURL        string
	Secret         string
	DevAuthEnabled bool
	DevAuthToken   string
	HTTPClient     *http.Client
	CacheDuration  time.Duration
}

// Service validates bearer tokens
type Service struct {
	jwksURL       string
	secret        []byte
	client        *http.Client
	keys          map[string]*ecdsa.PublicKey
	keysMutex     sync.RWMutex
	lastFetch     time.Time
	cacheDuration time.Duration
	devEnabled    bool
	devToken      string
}

// NewService creates an auth service. When a JWKS URL is configured the key set
// is fetched once up front so a bad URL fails at startup.
func NewService(cfg Config) (*Service, error) {
	if cfg.JWKSURL == "" && cfg.Secret == "" && !(cfg.DevAuthEnabled && cfg.DevAuthToken != "") {
		return nil, ErrNoVerifier
	}

	s := &Service{
		jwksURL:       cfg.JWKSURL,
		secret:        []byte(cfg.Secret),
		client:        cfg.HTTPClient,
		keys:          make(map[string]*ecdsa.PublicKey),
		cacheDuration: cfg.CacheDuration,
		devEnabled:    cfg.DevAuthEnabled,
		devToken:      cfg.DevAuthToken,
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: 10 * time.Second}
	}
	if s.cacheDuration <= 0 {
		s.cacheDuration = time.Hour
	}

	if s.jwksURL != "" {
		if err := s.fetchJWKS(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to fetch initial JWKS: %w", err)
		}
	}

	return s, nil
}

// fetchJWKS replaces the cached keys with the current key set
func (s *Service) fetchJWKS(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJWKSFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJWKSFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: endpoint returned status %d", ErrJWKSFetch, resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("%w: decoding key set: %v", ErrJWKSFetch, err)
	}

	keys := make(map[string]*ecdsa.PublicKey, len(jwks.Keys))
	for _, jwk := range jwks.Keys {
		if jwk.Kty != "EC" || jwk.Alg != "ES256" {
			continue
		}
		key, err := parseECKey(jwk)
		if err != nil {
			continue
		}
		keys[jwk.Kid] = key
	}

	s.keysMutex.Lock()
	s.keys = keys
	s.lastFetch = time.Now()
	s.keysMutex.Unlock()
	return nil
}

// parseECKey converts a P-256 JWK to an ECDSA public key
func parseECKey(jwk JWK) (*ecdsa.PublicKey, error) {
	xBytes, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("failed to decode X coordinate: %w", err)
	}
	yBytes, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Y coordinate: %w", err)
	}

	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}, nil
}

// publicKey looks up kid, refreshing the key set when it is unknown or stale
func (s *Service) publicKey(ctx context.Context, kid string) (*ecdsa.PublicKey, error) {
	s.keysMutex.RLock()
	key, exists := s.keys[kid]
	stale := time.Since(s.lastFetch) > s.cacheDuration
	s.keysMutex.RUnlock()

	if !exists || stale {
		if err := s.fetchJWKS(ctx); err != nil {
			return nil, err
		}
		s.keysMutex.RLock()
		key, exists = s.keys[kid]
		s.keysMutex.RUnlock()
	}

	if !exists {
		return nil, fmt.Errorf("key with id %s not found", kid)
	}
	return key, nil
}

// ValidateToken verifies tokenString and returns its claims
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if s.devEnabled && s.devToken != "" &&
		subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.devToken)) == 1 {
		return s.DevClaims(), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodECDSA:
			if s.jwksURL == "" {
				return nil, fmt.Errorf("ES256 tokens are not accepted")
			}
			kid, ok := token.Header["kid"].(string)
			if !ok {
				return nil, fmt.Errorf("no kid found in token header")
			}
			return s.publicKey(ctx, kid)
		case *jwt.SigningMethodHMAC:
			if len(s.secret) == 0 {
				return nil, fmt.Errorf("HS256 tokens are not accepted")
			}
			return s.secret, nil
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	}, jwt.WithValidMethods([]string{"ES256", "HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Sub == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// DevClaims returns the fixed claims granted to the dev token
func (s *Service) DevClaims() *Claims {
	now := time.Now()
	return &Claims{
		Sub:   "dev-user-001",
		Email: "dev@biomed-search.local",
		Role:  "authenticated",
		AppMetadata: AppMetadata{
			Role: "admin",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(365 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}
