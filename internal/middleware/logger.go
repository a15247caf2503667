package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one key=value line per request and converts panics into
// the JSON error envelope instead of dropping the connection.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic method=%s path=%s client_ip=%s user_id=%s error=%q",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString("user_id"),
					err.Error(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			log.Printf(
				"request status=%d method=%s path=%s query=%s client_ip=%s user_id=%s latency=%s",
				c.Writer.Status(),
				c.Request.Method,
				c.Request.URL.Path,
				c.Request.URL.RawQuery,
				c.ClientIP(),
				c.GetString("user_id"),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
