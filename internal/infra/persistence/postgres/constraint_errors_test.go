package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "raw unique", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_media_path" (SQLSTATE 23505)`), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "raw foreign key", err: errors.New("ERROR: insert violates foreign key constraint (SQLSTATE 23503)"), foreignKey: true},
		{name: "not null", err: errors.New(`ERROR: null value in column "path" violates not-null constraint (SQLSTATE 23502)`), notNull: true},
		{name: "check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "unrelated", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
