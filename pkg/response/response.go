// Package response is the single point translating taxonomy errors into the
// wire shape. Handlers never pick status codes for failures themselves.
package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// ErrorResponse is the stable failure payload: every mapped error carries a
// server timestamp, the request correlation id, the request path (with query
// string), a machine-readable code, a human message and optional per-field
// details.
type ErrorResponse struct {
	Timestamp time.Time           `json:"timestamp"`
	RequestID string              `json:"request_id,omitempty"`
	Path      string              `json:"path"`
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Details   map[string][]string `json:"details,omitempty"`
}

type mapping struct {
	status  int
	code    string
	message string
}

var kindMappings = map[apperrors.Kind]mapping{
	apperrors.KindNotFound:           {http.StatusNotFound, "NOT_FOUND", "Not Found"},
	apperrors.KindInvalidArgument:    {http.StatusBadRequest, "BAD_REQUEST", "Bad Request"},
	apperrors.KindValidationFailed:   {http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed"},
	apperrors.KindDuplicateValue:     {http.StatusConflict, "UNIQUE_VIOLATION", "Duplicate value"},
	apperrors.KindInvalidCredentials: {http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials"},
	apperrors.KindAccountDisabled:    {http.StatusForbidden, "ACCOUNT_DISABLED", "Account disabled"},
	apperrors.KindInternal:           {http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"},
}

// Error maps any failure to the wire shape and writes it. Unclassified
// errors downgrade to 500 with full detail kept in the server log only.
func Error(c *gin.Context, logger *logrus.Logger, err error) {
	kind := apperrors.KindOf(err)
	m := kindMappings[kind]

	body := ErrorResponse{
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString("request_id"),
		Path:      requestPath(c),
		Code:      m.code,
		Message:   clientMessage(err, m),
		Details:   apperrors.DetailsOf(err),
	}
	logError(logger, m, body, err)
	c.AbortWithStatusJSON(m.status, body)
}

// ValidationError writes a VALIDATION_ERROR with the given field details.
func ValidationError(c *gin.Context, logger *logrus.Logger, details map[string][]string) {
	Error(c, logger, apperrors.ValidationFailed(details))
}

// clientMessage prefers the taxonomy error's own message. Taxonomy errors
// keep their cause out of Message, so nothing internal can leak here;
// unclassified errors fall back to the generic mapping text.
func clientMessage(err error, m mapping) string {
	var e *apperrors.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return m.message
}

func logError(logger *logrus.Logger, m mapping, body ErrorResponse, err error) {
	if logger == nil {
		return
	}
	entry := logger.WithFields(logrus.Fields{
		"status":     m.status,
		"code":       m.code,
		"request_id": body.RequestID,
		"path":       body.Path,
	})
	switch {
	case m.status >= http.StatusInternalServerError:
		entry.WithError(err).Error("SERVER_ERROR")
	case m.status == http.StatusConflict:
		entry.WithField("msg", err.Error()).Warn("CLIENT_ERROR_CONFLICT")
	default:
		entry.WithField("msg", err.Error()).Info("CLIENT_ERROR")
	}
}

func requestPath(c *gin.Context) string {
	p := c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		return p + "?" + q
	}
	return p
}
