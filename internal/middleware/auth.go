package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingHeader = errors.New("authorization header missing")
	errHeaderFormat  = errors.New("authorization header is not a bearer token")
	errMissingActor  = errors.New("token subject missing")
)

// AuthMiddleware validates the bearer token issued by the identity provider
// and attaches the acting user id (the token subject) to the request.
// Tokens are only validated here, never issued.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Rejected request without bearer token", slog.String("reason", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": headerErrorMessage(err)})
			return
		}

		actorID, err := actorFromToken(parser, raw, keyFunc)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenErrorMessage(err)})
			return
		}

		// Every mutating operation attributes its audit fields to this id.
		enriched := logger.With(slog.String("user_id", actorID))
		c.Request = c.Request.WithContext(WithLogger(WithUserID(c.Request.Context(), actorID), enriched))
		c.Set(string(userIDKey), actorID)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.Contains(token, " ") {
		return "", errHeaderFormat
	}
	return token, nil
}

func actorFromToken(parser *jwt.Parser, raw string, keyFunc jwt.Keyfunc) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
		return "", err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errMissingActor
	}
	return claims.Subject, nil
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingActor):
		return "Invalid token claims"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "Token must carry an expiry"
	default:
		return "Invalid token"
	}
}

func headerErrorMessage(err error) string {
	if errors.Is(err, errMissingHeader) {
		return "Authorization header required"
	}
	return "Authorization header format must be Bearer {token}"
}
