package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
)

// timeTokenTTL bounds replay of a captured time token.
const timeTokenTTL = 5 * time.Minute

// APIKeyMiddleware guards internal endpoints with a shared API key plus a
// short-lived fernet time token. The key comes from INTERNAL_API_KEY; the
// token is a fernet message signed with a key derived from the API key, so
// both sides only need the one shared secret.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "API key not configured")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}
		if fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, tokenKeys(apiKey)) == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateTimeToken creates a time token for the given API key. Exposed for
// clients and tests; the server only verifies.
func GenerateTimeToken(apiKey string) string {
	keys := tokenKeys(apiKey)
	token, err := fernet.EncryptAndSign(
		[]byte(strconv.FormatInt(time.Now().Unix(), 10)),
		keys[0],
	)
	if err != nil {
		return ""
	}
	return string(token)
}

// tokenKeys derives the fernet signing key from the shared API key.
func tokenKeys(apiKey string) []*fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	var key fernet.Key
	copy(key[:], sum[:])
	return []*fernet.Key{&key}
}
