package server

import (
	"net/http"

	"textmud/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func getEntity[T any](s *Server, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var record *T
		err := s.gateway.Do(c.Request.Context(), func(sess *db.Session) error {
			var err error
			record, err = db.Get[T](sess, id)
			return err
		})
		if err != nil {
			s.writeStorageError(c, err, "get", entity)
			return
		}
		if record == nil {
			s.writeMissing(c, entity)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func listEntities[T any](s *Server, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []T
		err := s.gateway.Do(c.Request.Context(), func(sess *db.Session) error {
			var err error
			records, err = db.List[T](sess)
			return err
		})
		if err != nil {
			s.writeStorageError(c, err, "list", entity)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func deleteEntity[T any](s *Server, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		err := s.gateway.Do(c.Request.Context(), func(sess *db.Session) error {
			return db.Delete[T](sess, id)
		})
		if err != nil {
			s.writeStorageError(c, err, "delete", entity)
			return
		}
		s.requestLog(c).Info(entity+" deleted", "id", id)
		c.JSON(http.StatusOK, id)
	}
}

// create persists record in its own unit of work after check passes and
// answers with the new identifier.
func (s *Server) create(c *gin.Context, entity string, record db.Entity, check func(*db.Session) error) {
	var id uuid.UUID
	err := s.gateway.Do(c.Request.Context(), func(sess *db.Session) error {
		if check != nil && s.cfg.EnforceReferences {
			if err := check(sess); err != nil {
				return err
			}
		}
		var err error
		id, err = db.Create(sess, record)
		return err
	})
	if err != nil {
		s.writeStorageError(c, err, "create", entity)
		return
	}
	s.requestLog(c).Info(entity+" created", "id", id)
	c.JSON(http.StatusOK, id)
}
