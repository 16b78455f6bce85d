package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn in a transaction bound to ctx. Returning an error rolls back.
//
//	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Create(ctx, tx, entity)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}

// InTransaction is WithTransaction for functions that produce a value.
// The zero value is returned when the transaction rolls back.
func InTransaction[T any](ctx context.Context, db *gorm.DB, fn func(*gorm.DB) (T, error)) (T, error) {
	var result T
	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		value, err := fn(tx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
