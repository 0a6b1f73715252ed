package transport

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crop-image-gate/internal/config"
	apperrors "crop-image-gate/internal/errors"
	"crop-image-gate/internal/logger"
	"crop-image-gate/internal/service"
	"crop-image-gate/pkg/models"
	"crop-image-gate/pkg/quality"
)

// NewHandler wires the HTTP surface of the quality gate.
func NewHandler(svc service.ValidationService, cfg *config.Config) http.Handler {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.POST("/validate", validateImage(svc, cfg))

	return r
}

func validateImage(svc service.ValidationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Debug("Processing validation request")

		var req models.ValidationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}
		if (req.ImageData == "") == (req.URL == "") {
			err := apperrors.NewValidationError("exactly one of image_data or url is required", nil)
			respondError(c, err.StatusCode, "invalid request", err)
			return
		}

		checks, err := parseChecks(req.CheckTypes)
		if err != nil {
			appErr := apperrors.NewValidationError(err.Error(), err)
			respondError(c, appErr.StatusCode, "invalid check_types", appErr)
			return
		}

		var resp *models.ValidationResponse
		if req.URL != "" {
			resp, err = svc.ValidateRef(ctx, req.URL, checks)
			if err != nil {
				statusCode := determineStatusCode(err)
				respondError(c, statusCode, "failed to validate image", err)
				return
			}
		} else {
			data, decErr := base64.StdEncoding.DecodeString(req.ImageData)
			if decErr != nil {
				appErr := apperrors.NewValidationError("image_data is not valid base64", decErr)
				respondError(c, appErr.StatusCode, "invalid image_data", appErr)
				return
			}
			resp = svc.ValidateBytes(ctx, data, checks)
		}

		c.JSON(http.StatusOK, resp)
	}
}

func parseChecks(names []string) ([]quality.CheckType, error) {
	checks := make([]quality.CheckType, 0, len(names))
	for _, name := range names {
		ct, ok := quality.ParseCheckType(name)
		if !ok {
			return nil, fmt.Errorf("unknown check type %q", name)
		}
		checks = append(checks, ct)
	}
	return checks, nil
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
