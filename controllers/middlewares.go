package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const defaultOwnerID = "demo"

// OwnerMiddleware resolves whose closet a request works on and stores it as
// "ownerID". A bearer token must be an HS256 token signed with secret, its sub
// claim becomes the owner. Requests without a token use the owner_id query
// parameter, or the demo closet.
func OwnerMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				ownerID := strings.TrimSpace(c.QueryParam("owner_id"))
				if ownerID == "" {
					ownerID = defaultOwnerID
				}
				if !validOwnerID(ownerID) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid owner_id"})
				}
				c.Set("ownerID", ownerID)
				c.Set("authenticated", false)
				return next(c)
			}

			ownerID, err := ownerFromToken(header, secret)
			if err != nil {
				log.Printf("[Auth] rejected token: %v", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			c.Set("ownerID", ownerID)
			c.Set("authenticated", true)
			return next(c)
		}
	}
}

func ownerFromToken(header, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("no signing secret configured")
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("malformed authorization header")
	}
	token, err := jwt.Parse(strings.TrimSpace(raw), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

// validOwnerID rejects ids that could act as path segments in storage keys.
func validOwnerID(ownerID string) bool {
	return len(ownerID) <= 100 && !strings.ContainsAny(ownerID, "/\\") && !strings.Contains(ownerID, "..")
}

func currentOwner(c echo.Context) string {
	ownerID, _ := c.Get("ownerID").(string)
	if ownerID == "" {
		return defaultOwnerID
	}
	return ownerID
}

func isAuthenticated(c echo.Context) bool {
	authenticated, _ := c.Get("authenticated").(bool)
	return authenticated
}
