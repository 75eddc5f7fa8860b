package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"directory-service/cmd/responses"
	"directory-service/internal/errs"
	"directory-service/internal/models"
	"directory-service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Controller holds what every handler needs. It is built once at startup and
// shared by all requests; nothing in it is mutated per request.
type Controller struct {
	DB Database

	// Strict answers 400 for missing fields and 404 for an employee append
	// that matched no company, instead of 200.
	Strict bool

	RequestTimeout time.Duration
}

func New(db Database, strict bool, requestTimeout time.Duration) *Controller {
	return &Controller{DB: db, Strict: strict, RequestTimeout: requestTimeout}
}

func (ctrl *Controller) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := ctrl.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// bindRecord decodes the body as a JSON object. An empty body is an empty
// record.
func bindRecord(c *gin.Context) (models.Record, error) {
	record := models.Record{}
	if c.Request.Body == nil {
		return record, nil
	}
	if err := c.ShouldBindJSON(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Record{}, nil
		}
		return nil, err
	}
	if record == nil {
		record = models.Record{}
	}
	return record, nil
}

// checkRequired writes the missing fields reply and returns false when record
// lacks any of requiredKeys.
func (ctrl *Controller) checkRequired(c *gin.Context, requiredKeys []string, record models.Record) bool {
	ok, missing := validation.CheckMissingFields(requiredKeys, record)
	if ok {
		return true
	}

	log.Warn().Strs("missing", missing).Str("path", c.FullPath()).Msg("request is missing required fields")
	status := http.StatusOK
	if ctrl.Strict {
		status = errs.HTTPStatus(&errs.ValidationError{Missing: missing})
	}
	c.String(status, validation.MissingFieldsMessage(missing))
	return false
}

func badJSON(c *gin.Context, err error) {
	log.Error().Err(err).Msg("error wrong json format")
	c.JSON(http.StatusBadRequest, responses.Response{
		Status:  http.StatusBadRequest,
		Message: "request body must be a JSON object",
		Data:    map[string]interface{}{"data": err.Error()},
	})
}

// abortWithError replies with the status errs maps err to.
func abortWithError(c *gin.Context, message string, err error) {
	status := errs.HTTPStatus(err)
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}
	event.Err(err).Int("status", status).Msg(message)

	c.JSON(status, responses.Response{
		Status:  status,
		Message: message,
		Data:    map[string]interface{}{"data": err.Error()},
	})
}
