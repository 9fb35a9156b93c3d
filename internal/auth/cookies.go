package auth

import (
	"net/http"
	"time"
)

const accessTokenCookie = "access_token"

// ShouldUseCookies reports whether the client looks like a browser that
// expects cookie-based sessions. Browsers send Sec-Fetch-* metadata on
// every request; API clients generally do not.
func ShouldUseCookies(r *http.Request) bool {
	return r.Header.Get("Sec-Fetch-Site") != ""
}

// SetAuthCookie stores the access token in an HttpOnly cookie so the
// dashboard frontend never handles the raw token in JavaScript.
func SetAuthCookie(w http.ResponseWriter, accessToken string, isProduction bool, duration time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetAccessTokenFromCookie reads the access token cookie
func GetAccessTokenFromCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(accessTokenCookie)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// ClearAuthCookie removes the access token cookie on logout
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
