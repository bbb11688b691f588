package handlers

import (
	"errors"
	"io"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/listingai/listingai-backend/internal/middleware"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// bindJSON binds the request body into obj. An empty body leaves obj untouched
// so required-field checks report the missing field instead of a decode error.
// Callers answer any other bind error with 400 "Invalid request data", never 500.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError writes {"error": message}. Server errors are logged and sent to Sentry.
func respondError(c *gin.Context, status int, message string, err error) {
	if status >= 500 && err != nil {
		logrus.WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString(middleware.RequestIDKey),
		}).Errorf("%s: %v", message, err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}
