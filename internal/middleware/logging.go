// internal/middleware/logging.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

// RequestLogger logs every request with latency and status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if userID, ok := utils.GetUserIDFromContext(c); ok {
			entry = entry.WithField("user_id", userID)
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request completed")
		}
	}
}

// AuditTrail records mutating admin and checkout actions. The write
// happens off the request path; a lost audit row never fails a request.
func AuditTrail(db *gorm.DB, action, resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		entry := models.AuditLog{
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if userIDStr, ok := utils.GetUserIDFromContext(c); ok {
			if userID, err := uuid.Parse(userIDStr); err == nil {
				entry.UserID = &userID
			}
		}
		if idParam := c.Param("id"); idParam != "" {
			if resourceID, err := uuid.Parse(idParam); err == nil {
				entry.ResourceID = &resourceID
			}
		}
		entry.NewValues = models.JSONB{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}

		go func() {
			if err := db.Create(&entry).Error; err != nil {
				logrus.WithError(err).Warn("Failed to write audit log")
			}
		}()
	}
}
