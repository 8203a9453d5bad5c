package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenTTL — срок жизни access-токена.
const TokenTTL = 30 * 24 * time.Hour

// claims — полезная нагрузка access-токена.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// BuildToken выпускает access-токен для пользователя.
func BuildToken(userID int64, email, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

// WithAuth извлекает идентификатор пользователя из Bearer-токена.
// Запрос без токена или с невалидным токеном проходит дальше анонимным:
// обязательность авторизации решает конкретный хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			var c claims
			token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, c.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает идентификатор пользователя запроса.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
