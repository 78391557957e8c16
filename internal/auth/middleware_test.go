package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": "64a0f1e2c3d4e5f601234567",
		"email":    "admin@raeesatours.com",
		"exp":      exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func callMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	handler := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/registrations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Success {
		t.Error("rejections must carry success=false")
	}
	return body.Message
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, reached := callMiddleware(t, "")
	if reached {
		t.Fatal("handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "No authentication token, access denied" {
		t.Errorf("got message %q", msg)
	}
}

func TestMiddlewareRejectsNonBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, reached := callMiddleware(t, "Basic YWRtaW46cHc=")
	if reached || rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer header must be rejected, reached=%v status=%d", reached, rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "No authentication token, access denied" {
		t.Errorf("got message %q", msg)
	}
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, reached := callMiddleware(t, "Bearer not-a-jwt")
	if reached || rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token must be rejected, reached=%v status=%d", reached, rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid token, access denied" {
		t.Errorf("got message %q", msg)
	}
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signedToken(t, "another-secret", time.Now().Add(time.Hour))
	rec, reached := callMiddleware(t, "Bearer "+token)
	if reached || rec.Code != http.StatusUnauthorized {
		t.Fatalf("token signed with wrong secret must be rejected, reached=%v status=%d", reached, rec.Code)
	}
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signedToken(t, "test-secret", time.Now().Add(-time.Hour))
	rec, reached := callMiddleware(t, "Bearer "+token)
	if reached || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token must be rejected, reached=%v status=%d", reached, rec.Code)
	}
}

func TestMiddlewarePassesValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signedToken(t, "test-secret", time.Now().Add(time.Hour))
	rec, reached := callMiddleware(t, "Bearer "+token)
	if !reached {
		t.Fatal("valid token must reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestVerifyTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signedToken(t, "test-secret", time.Now().Add(time.Hour))
	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims["email"] != "admin@raeesatours.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}
