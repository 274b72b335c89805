package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringToUInt64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"42", 42},
		{"", 0},
		{"-1", 0},
		{"12abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StringToUInt64(tt.in), tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2021, time.March, 7, 12, 0, 0, 0, time.Local).Unix()
	assert.Equal(t, "7 Mar 2021", FormatDate(ts))
	assert.Equal(t, "", FormatDate(0))
}

func TestRandSecretBase62(t *testing.T) {
	a, b := RandSecretBase62(32), RandSecretBase62(32)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[0-9a-zA-Z]+$`, a)
}
