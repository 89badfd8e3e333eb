package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("invalid reference")
)

// Gateway hands out units of work over a shared connection pool.
type Gateway struct {
	conn *gorm.DB
}

func NewGateway(conn *gorm.DB) *Gateway {
	return &Gateway{conn: conn}
}

// Session is a single unit of work. It is only valid inside the callback
// passed to Gateway.Do.
type Session struct {
	tx *gorm.DB
}

// Do runs fn inside a transaction bound to ctx. The transaction commits when
// fn returns nil and rolls back on error or panic.
func (g *Gateway) Do(ctx context.Context, fn func(*Session) error) error {
	if g == nil || g.conn == nil {
		return errors.New("db connection is nil")
	}
	return g.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Session{tx: tx})
	})
}

// Ping checks that the pool can reach the database.
func (g *Gateway) Ping(ctx context.Context) error {
	if g == nil || g.conn == nil {
		return errors.New("db connection is nil")
	}
	sqlDB, err := g.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Create inserts record and returns its identifier.
func Create(s *Session, record Entity) (uuid.UUID, error) {
	if err := s.tx.Create(record).Error; err != nil {
		return uuid.Nil, fmt.Errorf("create %T: %w", record, err)
	}
	return record.Identity(), nil
}

// Get fetches a row by id. A missing row yields nil without an error.
func Get[T any](s *Session, id uuid.UUID) (*T, error) {
	var record T
	err := s.tx.Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %T %s: %w", record, id, err)
	}
	return &record, nil
}

// List returns every row in insertion order.
func List[T any](s *Session) ([]T, error) {
	records := make([]T, 0)
	if err := s.tx.Order("created_at ASC").Order("id ASC").Find(&records).Error; err != nil {
		var zero T
		return nil, fmt.Errorf("list %T: %w", zero, err)
	}
	return records, nil
}

// Delete removes a row by id, returning ErrNotFound when it does not exist.
func Delete[T any](s *Session, id uuid.UUID) error {
	record, err := Get[T](s, id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrNotFound
	}
	if err := s.tx.Where("id = ?", id).Delete(record).Error; err != nil {
		return fmt.Errorf("delete %T %s: %w", record, id, err)
	}
	return nil
}

func Exists[T any](s *Session, id uuid.UUID) (bool, error) {
	var zero T
	var count int64
	if err := s.tx.Model(&zero).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("exists %T %s: %w", zero, id, err)
	}
	return count > 0, nil
}

func Count[T any](s *Session) (int64, error) {
	var zero T
	var count int64
	if err := s.tx.Model(&zero).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", zero, err)
	}
	return count, nil
}

// RequireExisting returns ErrInvalidReference unless a T row with id exists.
func RequireExisting[T any](s *Session, id uuid.UUID) error {
	ok, err := Exists[T](s, id)
	if err != nil {
		return err
	}
	if !ok {
		var zero T
		return fmt.Errorf("%w: no %T with id %s", ErrInvalidReference, zero, id)
	}
	return nil
}
