package middleware

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CartIDKey is the gin context key the cart id is stored under.
const CartIDKey = "cart_id"

const cartCookieName = "cart_token"

const cartCookieMaxAge = 365 * 24 * 60 * 60 // one year, in seconds

// CartSession resolves the caller's cart identity from a signed cookie,
// minting a fresh cart id when the cookie is absent, expired or tampered
// with. The cart id is opaque: nothing downstream validates it beyond using
// it as a lookup key.
func CartSession(c *gin.Context) {
	if token, err := c.Cookie(cartCookieName); err == nil {
		if cartID, err := parseCartToken(token); err == nil {
			c.Set(CartIDKey, cartID)
			c.Next()
			return
		}
	}

	cartID, err := IssueCartCookie(c)
	if err != nil {
		c.AbortWithStatusJSON(500, gin.H{"error": "Failed to create cart session"})
		return
	}
	c.Set(CartIDKey, cartID)
	c.Next()
}

// IssueCartCookie mints a new cart id, signs it into the session cookie and
// returns it. Also used by the cart rotation endpoint.
func IssueCartCookie(c *gin.Context) (string, error) {
	cartID := uuid.NewString()

	claims := jwt.MapClaims{
		"cart_id": cartID,
		"exp":     time.Now().Add(365 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	c.SetCookie(cartCookieName, signed, cartCookieMaxAge, "/", "", false, true)
	c.Set(CartIDKey, cartID)
	return cartID, nil
}

func parseCartToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid cart token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	cartID, ok := claims["cart_id"].(string)
	if !ok || cartID == "" {
		return "", errors.New("missing cart id claim")
	}
	return cartID, nil
}
