// Package iotesting provides shared test utilities: configuration for
// tests and writers of input fixtures.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// AuditHeader is the header shared by both absence extracts.
var AuditHeader = []string{
	"Número de personal",
	"Número ID",
	"Clase absent./pres.",
	"Inicio de validez",
	"Fin de validez",
	"Modificado el",
	"Modificado por",
}

// GetTestConfig returns a configuration that writes generated files to
// a "salidas" directory inside dir and never shows progress bars.
func GetTestConfig(dir string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptOutputDir(filepath.Join(dir, "salidas")),
		config.OptOutputWithProgress(false),
	})
	return cfg
}

// WriteXLSX saves rows to the first sheet of a new workbook at path.
func WriteXLSX(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

// WriteFile writes text content to path.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
