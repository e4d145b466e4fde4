package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	queryTimeoutCallback = "rewards:query_timeout"
	queryCancelKey       = "rewards:query_cancel"
)

// registerQueryTimeout bounds every query, create, update and delete that runs without a deadline.
// Statements inside a unit of work inherit the transaction deadline instead.
// Row and Raw are left alone because their rows are read after the callbacks return.
func registerQueryTimeout(db *gorm.DB, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}

	start := func(tx *gorm.DB) {
		ctx := tx.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		if _, ok := ctx.Deadline(); ok {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		tx.Statement.Context = ctx
		tx.InstanceSet(queryCancelKey, cancel)
	}
	finish := func(tx *gorm.DB) {
		if cancel, ok := tx.InstanceGet(queryCancelKey); ok {
			cancel.(context.CancelFunc)()
		}
	}

	callbacks := db.Callback()
	steps := []error{
		callbacks.Query().Before("gorm:query").Register(queryTimeoutCallback+":start", start),
		callbacks.Query().After("gorm:after_query").Register(queryTimeoutCallback+":finish", finish),
		callbacks.Create().Before("gorm:create").Register(queryTimeoutCallback+":start", start),
		callbacks.Create().After("gorm:commit_or_rollback_transaction").Register(queryTimeoutCallback+":finish", finish),
		callbacks.Update().Before("gorm:update").Register(queryTimeoutCallback+":start", start),
		callbacks.Update().After("gorm:commit_or_rollback_transaction").Register(queryTimeoutCallback+":finish", finish),
		callbacks.Delete().Before("gorm:delete").Register(queryTimeoutCallback+":start", start),
		callbacks.Delete().After("gorm:commit_or_rollback_transaction").Register(queryTimeoutCallback+":finish", finish),
	}
	return errors.Join(steps...)
}
