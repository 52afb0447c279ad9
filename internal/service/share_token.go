package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"naijapath/internal/domain"
)

// ShareTokenService issues and validates the signed tokens behind shareable
// result links. The whole shared summary travels inside the token, so results
// stay shareable without ever being stored server-side.
type ShareTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// SharedMatch is the slice of a match that survives into a share link.
type SharedMatch struct {
	Title        string `json:"title"`
	MatchPercent int    `json:"match"`
}

type ShareClaims struct {
	ResultID string        `json:"rid"`
	Matches  []SharedMatch `json:"matches"`
	jwt.RegisteredClaims
}

var (
	ErrShareTokenInvalid = errors.New("share token invalid")
	ErrShareTokenExpired = errors.New("share token expired")
)

func NewShareTokenService(secret string, ttl time.Duration) *ShareTokenService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &ShareTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "naijapath",
	}
}

// Issue signs a share token for one analysis result.
func (s *ShareTokenService) Issue(result domain.AnalysisResult) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrShareTokenInvalid
	}
	if result.ID == "" || len(result.Matches) == 0 {
		return "", ErrShareTokenInvalid
	}
	shared := make([]SharedMatch, 0, len(result.Matches))
	for _, m := range result.Matches {
		shared = append(shared, SharedMatch{Title: m.Career.Title, MatchPercent: m.MatchPercent})
	}
	now := time.Now().UTC()
	claims := ShareClaims{
		ResultID: result.ID,
		Matches:  shared,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   result.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a share token and returns its claims.
func (s *ShareTokenService) Parse(tokenString string) (ShareClaims, error) {
	if len(s.secret) == 0 {
		return ShareClaims{}, ErrShareTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return ShareClaims{}, ErrShareTokenInvalid
	}
	var claims ShareClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ShareClaims{}, ErrShareTokenExpired
		}
		return ShareClaims{}, ErrShareTokenInvalid
	}
	if !s.isValidClaims(claims) {
		return ShareClaims{}, ErrShareTokenInvalid
	}
	return claims, nil
}

func (s *ShareTokenService) isValidClaims(claims ShareClaims) bool {
	if strings.TrimSpace(claims.ResultID) == "" || len(claims.Matches) == 0 {
		return false
	}
	if claims.Subject != claims.ResultID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}

// ShareText renders the social share line for the top match.
func (c ShareClaims) ShareText() string {
	if len(c.Matches) == 0 {
		return ""
	}
	top := c.Matches[0]
	return fmt.Sprintf("I just discovered my perfect career path! I'm %d%% matched with %s. Check out NaijaPath to find yours!",
		top.MatchPercent, top.Title)
}
