// Package iofs prepares the files validador keeps outside of its inputs:
// config and log directories under the home directory, the default
// config file, and directories of output files.
package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Jeysshonb/Validador-nomina/pkg/config"
)

// ConfigYAML is the default config file written on the first run.
//
//go:embed config.yaml
var ConfigYAML string

const (
	dirPerm  = 0755
	filePerm = 0644
)

// EnsureDirs creates the config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	if err := ensureDir("config", config.ConfigDir(homeDir)); err != nil {
		return err
	}
	return ensureDir("log", config.LogDir(homeDir))
}

// EnsureOutputDir creates the directory that will hold the file at path.
func EnsureOutputDir(path string) error {
	return ensureDir("output", filepath.Dir(path))
}

func ensureDir(role, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return CreateDirError(role, dir, err)
	}
	return nil
}

// EnsureConfigFile writes ConfigYAML to the config file path unless a
// config file is already there. The file is created exclusively, so a
// user's config is never overwritten.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return WriteConfigError(path, err)
	}

	_, err = f.WriteString(ConfigYAML)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// a partial file would be taken for a user config next time
		_ = os.Remove(path)
		return WriteConfigError(path, err)
	}
	return nil
}
