package db

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, false},
		{"wrapped mysql", errors.Wrap(&mysql.MySQLError{Number: 1062}, "create"), true},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"sqlite", fmt.Errorf("UNIQUE constraint failed: users.username"), true},
		{"postgres", fmt.Errorf(`ERROR: duplicate key value violates unique constraint "uniq_slug" (SQLSTATE 23505)`), true},
		{"not found", gorm.ErrRecordNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}
