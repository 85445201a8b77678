package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://migrations", sourceURL("migrations"))
	assert.Equal(t, "file:///app/migrations", sourceURL("/app/migrations"))
	assert.Equal(t, "file://migrations", sourceURL("file://migrations"))
}

func TestZapMigrateLogger(t *testing.T) {
	t.Run("forwards golang-migrate output at debug level", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		l := &zapMigrateLogger{logger: zap.New(core)}

		l.Printf("Start buffering %d/u %s\n", 1, "create_location")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "Start buffering 1/u create_location", logs.All()[0].Message)
		assert.True(t, l.Verbose())
	})

	t.Run("is not verbose above debug", func(t *testing.T) {
		core, _ := observer.New(zap.InfoLevel)
		l := &zapMigrateLogger{logger: zap.New(core)}

		assert.False(t, l.Verbose())
	})
}

func TestNewFromURL_InvalidSource(t *testing.T) {
	_, err := NewFromURL("postgres://localhost:1/none?sslmode=disable", "/does/not/exist", zap.NewNop())
	assert.Error(t, err)
}
