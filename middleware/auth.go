package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	businessRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// JWTAuthBusinessMiddleware authenticates dashboard requests. The token must
// validate and its hash must match the business's stored hash, so revoking
// the token server-side kills live sessions. The auth cache is the fast
// path; on a miss the stored hash is fetched from the database.
func JWTAuthBusinessMiddleware(bizRepo businessRepo.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		businessID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		if client := utils.AuthCacheClient; client != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			cached, err := client.Get(ctx, utils.AuthCachePrefix+businessID).Result()
			cancel()
			if err == nil {
				if cached != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
					return
				}
				c.Set("businessID", businessID)
				c.Next()
				return
			}
		}

		biz, err := bizRepo.GetByIDWithProjection(businessID, bson.M{"tokenHash": 1})
		if err != nil || biz == nil || biz.TokenHash == "" || biz.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or business not found"})
			return
		}

		c.Set("businessID", businessID)
		c.Next()
	}
}
