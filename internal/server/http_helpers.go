package server

import (
	"errors"
	"net/http"

	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
	})
}

// writeMissing answers a read of an absent row. Strict mode reports 404 like
// delete does; otherwise the body is a bare JSON null with 200.
func (s *Server) writeMissing(c *gin.Context, entity string) {
	if s.cfg.StrictNotFound {
		writeError(c, http.StatusNotFound, entity+" not found")
		return
	}
	c.JSON(http.StatusOK, nil)
}

func (s *Server) writeStorageError(c *gin.Context, err error, action, entity string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(c, http.StatusNotFound, entity+" not found")
	case errors.Is(err, db.ErrInvalidReference):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		s.requestLog(c).Error("storage operation failed",
			"action", action,
			"entity", entity,
			"error", err)
		writeError(c, http.StatusInternalServerError, "failed to "+action+" "+entity)
	}
}
