package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loan-tracker/internal/domain/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Claims is what the identity provider signs. Only the subject is used.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticate trusts any HS256 bearer token signed with secret and stores
// its subject as the request identity. issuer is enforced when non-empty.
func Authenticate(secret []byte, issuer string) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)
	keyFn := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Add("Vary", echo.HeaderAuthorization)

			raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: err.Error()})
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFn); err != nil {
				return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid or expired authentication token"})
			}
			sub := strings.TrimSpace(claims.Subject)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "token has no subject"})
			}

			SetIdentity(c, sub)
			return next(c)
		}
	}
}

// SetIdentity records the caller on the request context.
func SetIdentity(c echo.Context, identity string) { c.Set(identityKey, identity) }

// Identity returns the authenticated user id, if Authenticate ran.
func Identity(c echo.Context) (string, bool) {
	v, ok := c.Get(identityKey).(string)
	return v, ok && v != ""
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be Bearer <token>")
	}
	return strings.TrimSpace(token), nil
}
