package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"naijapath/internal/domain"
)

func shareResult() domain.AnalysisResult {
	return domain.AnalysisResult{
		ID: "result-123",
		Matches: []domain.CareerMatch{
			{Career: domain.Career{ID: "software_developer", Title: "Software Developer"}, MatchPercent: 78},
			{Career: domain.Career{ID: "data_scientist", Title: "Data Scientist"}, MatchPercent: 64},
		},
	}
}

func TestShareTokenRoundTrip(t *testing.T) {
	svc := NewShareTokenService("test-secret", time.Hour)

	token, err := svc.Issue(shareResult())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.ResultID != "result-123" {
		t.Fatalf("result id not preserved, got %q", claims.ResultID)
	}
	if len(claims.Matches) != 2 {
		t.Fatalf("expected both matches in the claims, got %v", claims.Matches)
	}
	if claims.Matches[0].Title != "Software Developer" || claims.Matches[0].MatchPercent != 78 {
		t.Fatalf("top match not preserved, got %+v", claims.Matches[0])
	}
}

func TestShareTokenRejectsTamperedToken(t *testing.T) {
	svc := NewShareTokenService("test-secret", time.Hour)

	token, err := svc.Issue(shareResult())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-4] + "xxxx"
	if _, err := svc.Parse(tampered); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid for a tampered token, got %v", err)
	}

	other := NewShareTokenService("different-secret", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid under another secret, got %v", err)
	}
}

func TestShareTokenExpires(t *testing.T) {
	svc := NewShareTokenService("test-secret", -time.Minute)
	// A non-positive ttl falls back to the default, so force expiry directly.
	svc.ttl = -time.Minute

	token, err := svc.Issue(shareResult())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrShareTokenExpired) {
		t.Fatalf("expected ErrShareTokenExpired, got %v", err)
	}
}

func TestShareTokenRequiresSecret(t *testing.T) {
	svc := NewShareTokenService("", time.Hour)

	if _, err := svc.Issue(shareResult()); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid without a secret, got %v", err)
	}
	if _, err := svc.Parse("anything"); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid without a secret, got %v", err)
	}
}

func TestShareTokenRejectsIncompleteResults(t *testing.T) {
	svc := NewShareTokenService("test-secret", time.Hour)

	noID := shareResult()
	noID.ID = ""
	if _, err := svc.Issue(noID); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid for a result without an id, got %v", err)
	}

	noMatches := shareResult()
	noMatches.Matches = nil
	if _, err := svc.Issue(noMatches); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid for a result without matches, got %v", err)
	}

	if _, err := svc.Parse("   "); !errors.Is(err, ErrShareTokenInvalid) {
		t.Fatalf("expected ErrShareTokenInvalid for a blank token, got %v", err)
	}
}

func TestShareText(t *testing.T) {
	claims := ShareClaims{Matches: []SharedMatch{
		{Title: "Software Developer", MatchPercent: 78},
		{Title: "Data Scientist", MatchPercent: 64},
	}}

	text := claims.ShareText()
	if !strings.Contains(text, "78%") || !strings.Contains(text, "Software Developer") {
		t.Fatalf("share text should quote the top match, got %q", text)
	}
	if strings.Contains(text, "Data Scientist") {
		t.Fatalf("share text should only quote the top match, got %q", text)
	}

	if got := (ShareClaims{}).ShareText(); got != "" {
		t.Fatalf("empty claims should render no share text, got %q", got)
	}
}
