package server

import (
	"errors"
	"net/http"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type bindMessages map[string]map[string]string

var idMessages = bindMessages{
	"ID": {"required": "invalid identifier"},
}

var validatorOnce sync.Once

// registerValidators makes validation errors report the uri tag name
// instead of the Go field name.
func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("uri"); name != "" {
				return name
			}
			return field.Name
		})
	})
}

// Identifiers are parsed with uuid.Parse, which accepts either case.
type idURI struct {
	ID string `uri:"id" binding:"required"`
}

func bindURI(c *gin.Context, req any, messages bindMessages, fallback string) bool {
	if err := c.ShouldBindUri(req); err != nil {
		writeError(c, http.StatusBadRequest, resolveBindError(err, messages, fallback))
		return false
	}
	return true
}

func bindID(c *gin.Context) (uuid.UUID, bool) {
	var req idURI
	if !bindURI(c, &req, idMessages, "invalid identifier") {
		return uuid.Nil, false
	}
	return parseID(c, req.ID, "invalid identifier")
}

// parseID parses a required identifier, answering 400 with message when it
// is malformed.
func parseID(c *gin.Context, raw, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalID parses a uri value that may be empty.
func parseOptionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func resolveBindError(err error, messages bindMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.StructField()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg
				}
			}
			if fallback == "" {
				return verr.Field() + " is invalid"
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "invalid request"
}
