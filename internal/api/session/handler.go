package session

import (
	"net/http"
	"time"

	"portfolio-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

func issueSessionJWT(subject string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"exp":  time.Now().Add(sessionTTL).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}

// POST /session
func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != config.BACKOFFICE_USER {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	err := bcrypt.CompareHashAndPassword([]byte(config.BACKOFFICE_PASSWORD_HASH), []byte(input.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := issueSessionJWT(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: tokenString})
}

// DELETE /session
//
// Sessions are stateless JWTs, so invalidation is the client discarding the
// token. The endpoint exists as the defined logout entry point.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /session
func CurrentSession(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentSessionResponse{
		Subject: c.GetString("subject"),
		Role:    c.GetString("role"),
	})
}
