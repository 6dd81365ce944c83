package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

// RateLimitMiddleware runs every request through the admission controller.
// Policy rejections become 429 responses with retry headers; a storage
// failure is a 500, never a silent pass.
func RateLimitMiddleware(admissionService services.AdmissionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := extractClientIP(c)
		now := time.Now().UTC()

		err := admissionService.Admit(c.Request.Context(), clientIP, now)
		if err == nil {
			c.Next()
			return
		}

		var rejection *utils.RateLimitExceededError
		if errors.As(err, &rejection) {
			log.Printf("Rate limit exceeded - IP: %s, Limit: %d requests per %s, Path: %s, Method: %s",
				rejection.ClientIP, rejection.Limit, rejection.LimitType, c.Request.URL.Path, c.Request.Method)

			c.Header("Retry-After", strconv.Itoa(rejection.RetryAfter))
			c.Header("X-RateLimit-Limit", strconv.Itoa(rejection.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(now.Unix()+int64(rejection.RetryAfter), 10))
			utils.RespondError(c, http.StatusTooManyRequests, "admission_rejected",
				fmt.Sprintf("Rate limit exceeded: %d requests per %s", rejection.Limit, rejection.LimitType))
			c.Abort()
			return
		}

		utils.HandleServiceError(c, err)
		c.Abort()
	}
}

// extractClientIP prefers proxy-forwarded addresses over the socket address.
func extractClientIP(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	realIP := c.GetHeader("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	return c.ClientIP()
}
