package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

type widgetRow struct {
	ID   uint
	Name string
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widgetRow{}))

	w := &captureWriter{}
	session := db.Session(&gorm.Session{Logger: newGormLogger(w)}).WithContext(context.Background())

	var row widgetRow
	err = session.First(&row, 42).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, w.lines)

	err = session.Table("missing_table").First(&row).Error
	require.Error(t, err)
	assert.NotEmpty(t, w.lines)
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector("oracle", "")
	assert.Error(t, err)

	d, err := Dialector("sqlite", ":memory:")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}
