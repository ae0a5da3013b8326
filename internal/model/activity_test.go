package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityGormTag(t *testing.T, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(Activity{}).FieldByName(field)
	require.True(t, ok, "field %s must exist", field)
	return f.Tag.Get("gorm")
}

func TestActivityIndexCoversUserAndCreatedAt(t *testing.T) {
	assert.Contains(t, activityGormTag(t, "UserID"), "index:idx_user_created,priority:1")
	assert.Contains(t, activityGormTag(t, "CreatedAt"), "index:idx_user_created,priority:2")
}
