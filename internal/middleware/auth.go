package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harbourmove/leadsgo/internal/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// SessionCookie is set on login so server-gated pages and the
// dashboard websocket can authenticate without an Authorization header.
const SessionCookie = "access_token"

// Auth verifies JWT bearer tokens on API routes
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			// Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateToken(parts[1], secret)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly requires the authenticated user to carry the admin role.
// Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PageGuard gates server-rendered admin/dashboard areas. Visitors
// without a session are sent to the login page with the original path
// in redirectTo; authenticated non-admins land on the access-denied
// page carrying their email.
func PageGuard(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := sessionClaims(r, secret)
			if claims == nil {
				target := "/auth/login?redirectTo=" + url.QueryEscape(r.URL.Path)
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			if role, _ := claims["role"].(string); role != "admin" {
				email, _ := claims["email"].(string)
				http.Redirect(w, r, "/access-denied?email="+url.QueryEscape(email), http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionClaims resolves a token from the session cookie, the
// Authorization header or a token query parameter (websocket clients
// cannot set headers), in that order.
func sessionClaims(r *http.Request, secret string) jwt.MapClaims {
	var token string
	if c, err := r.Cookie(SessionCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		if parts := strings.Split(r.Header.Get("Authorization"), " "); len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		return nil
	}
	claims, err := utils.ValidateToken(token, secret)
	if err != nil {
		return nil
	}
	return claims
}

// SessionClaims exposes session resolution for handlers that gate
// non-page endpoints (the dashboard websocket) without redirects.
func SessionClaims(r *http.Request, secret string) jwt.MapClaims {
	return sessionClaims(r, secret)
}

// ClaimsFrom extracts validated claims from a request context
func ClaimsFrom(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(UserContextKey).(jwt.MapClaims)
	return claims
}
