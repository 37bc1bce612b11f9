package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// inTx runs fn inside a single transaction so a mutation and every
// cascade it triggers either commit together or roll back together,
// then maps driver-level failures onto the store error taxonomy.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return translate(db.WithContext(ctx).Transaction(fn))
}

var storeErrors = []error{
	ErrNotFound,
	ErrUniqueness,
	ErrConstraint,
	ErrReference,
	ErrRestrictedDeletion,
	ErrConflict,
	ErrTimeout,
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, storeErr := range storeErrors {
		if errors.Is(err, storeErr) {
			return err
		}
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
	}
	// gorm's MySQL driver only translates duplicate-key and FK errors;
	// InnoDB lock waits and deadlocks arrive as raw driver errors.
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1205: // ER_LOCK_WAIT_TIMEOUT
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		case 1213: // ER_LOCK_DEADLOCK
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	// Constraint failures reaching the database mean a concurrent
	// transaction committed between our pre-checks and this write.
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

// rowExists reports whether any row of m matches the condition.
func rowExists(tx *gorm.DB, m interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := tx.Model(m).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
