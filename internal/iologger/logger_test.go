package iologger

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerFormats(t *testing.T) {
	tests := []struct {
		msg    string
		format string
		has    string
	}{
		{"json", "json", `"msg":"rows loaded"`},
		{"text", "text", "msg=\"rows loaded\""},
		{"tint", "tint", "rows loaded"},
		{"unknown falls back to json", "xml", `"msg":"rows loaded"`},
	}

	for _, v := range tests {
		var buf bytes.Buffer
		cfg := config.LogConfig{Format: v.format, Level: "info", Destination: "file"}
		log := slog.New(NewHandler(&buf, cfg))
		log.Info("rows loaded", "rows", 3)
		assert.Contains(t, buf.String(), v.has, v.msg)
		assert.Contains(t, buf.String(), "rows", v.msg)
	}
}

func TestNewHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "warn"}
	log := slog.New(NewHandler(&buf, cfg))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func initFile(t *testing.T, logDir string, append bool) {
	t.Helper()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, Init(logDir, cfg, append))
}

func TestInitFile(t *testing.T) {
	logDir := t.TempDir()
	defer slog.SetDefault(slog.Default())
	t.Cleanup(func() { _ = Close() })

	initFile(t, logDir, false)
	slog.Info("first run")

	initFile(t, logDir, true)
	slog.Info("second run")

	content, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")

	initFile(t, logDir, false)
	content, err = os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, content, "a fresh log starts empty")
}

func TestInitClosesPreviousFile(t *testing.T) {
	logDir := t.TempDir()
	defer slog.SetDefault(slog.Default())
	t.Cleanup(func() { _ = Close() })

	initFile(t, logDir, false)
	first := logFile
	require.NotNil(t, first)

	initFile(t, logDir, true)
	assert.NotSame(t, first, logFile)
	_, err := first.WriteString("late record\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	err = Init(logDir, config.LogConfig{Destination: "stderr"}, true)
	require.NoError(t, err)
	assert.Nil(t, logFile)

	assert.NoError(t, Close())
}

func TestInitFileError(t *testing.T) {
	tests := []struct {
		msg      string
		logDir   func(t *testing.T) string
		append   bool
		mode     string
		cause    error
		rootSkip bool
	}{
		{
			msg:    "missing directory",
			logDir: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			mode:   "create",
			cause:  fs.ErrNotExist,
		},
		{
			msg: "read-only directory",
			logDir: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "logs")
				require.NoError(t, os.Mkdir(dir, 0555))
				return dir
			},
			append:   true,
			mode:     "append to",
			cause:    fs.ErrPermission,
			rootSkip: true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			if v.rootSkip && os.Geteuid() == 0 {
				t.Skip("permissions are not enforced for root")
			}
			logDir := v.logDir(t)
			err := Init(logDir, config.LogConfig{Destination: "file"}, v.append)
			require.Error(t, err)

			var gnErr *gn.Error
			require.ErrorAs(t, err, &gnErr)
			assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
			assert.Equal(t, []any{v.mode, filepath.Join(logDir, LogFile)}, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, v.cause)
		})
	}
}
