package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matchup-app/matchup-backend/auth"
	lb "github.com/matchup-app/matchup-backend/lobby"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// BearerAuth validates the Authorization header and puts the calling user
// in the gin context as a lobby.Member.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if len(header) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication", "code": lb.CodeUnauthenticated})
			c.Abort()
			return
		}

		parts := strings.Split(header, " ")

		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header", "code": lb.CodeUnauthenticated})
			c.Abort()
			return
		}

		claims, err := verifier.Verify(parts[1])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication", "code": lb.CodeUnauthenticated})
			c.Abort()
			return
		}

		c.Set("user", lb.Member{
			UserID:   claims.UserID,
			Nickname: claims.Nickname,
			Email:    claims.Email,
		})
	}
}
