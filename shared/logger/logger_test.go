package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Run("defaults to info and text", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		Init()
		assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
	})

	t.Run("reads level and format", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "JSON")
		Init()
		assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
	})
}
