package reconcile_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var primaryHeader = []string{
	"Número de personal",
	"Nombre del empleado o candidato",
	"Número ID",
	"Clase absent./pres.",
	"Inicio de validez",
	"Fin de validez",
	"Modificado el",
	"Modificado por",
	"Centro de coste",
}

var secondaryHeader = []string{
	"Número de personal",
	"Número ID",
	"Clase absent./pres.",
	"Inicio de validez",
	"Fin de validez",
	"Modificado el",
	"Modificado por",
	"Diagnóstico",
}

func primaryRow(pn, name, class, mod, by string) []string {
	return []string{pn, name, "7", class, "2024-01-01", "2024-01-05", mod, by, "1234"}
}

func secondaryRow(pn, class, mod, by string) []string {
	return []string{pn, "7", class, "2024-01-01", "2024-01-05", mod, by, "J06"}
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	return gnErr.Code
}

func errMsg(t *testing.T, err error) string {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	require.NotNil(t, gnErr.Err)
	return gnErr.Err.Error()
}

// TestReconcileScenarioA: only K2 matches, its audit fields are updated.
func TestReconcileScenarioA(t *testing.T) {
	primary := table.New(primaryHeader, [][]string{
		primaryRow("101", "Ana", "100", "2024-01-02", "USER1"),
		primaryRow("102", "Luis", "100", "2024-01-02", "USER1"),
		primaryRow("103", "Eva", "100", "2024-01-02", "USER1"),
	})
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("102", "100", "2024-02-10", "USER9"),
	})

	res, rep, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)
	require.Equal(t, 3, res.Len())

	assert.Equal(t, []string{"2024-01-02", "2024-02-10", "2024-01-02"},
		res.Column("modificado_el"))
	assert.Equal(t, []string{"USER1", "USER9", "USER1"},
		res.Column("modificado_por"))
	assert.Equal(t, []string{"Ana", "Luis", "Eva"},
		res.Column("nombre_del_empleado_o_candidato"))

	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 1, rep.UpdatedModifiedAt)
	assert.Equal(t, 1, rep.UpdatedModifiedBy)
	assert.InDelta(t, 33.33, rep.MatchedPercent, 0.01)
	assert.Equal(t, 3, rep.PrimaryRows)
	assert.Equal(t, 1, rep.SecondaryRows)
	assert.Equal(t, reconcile.StrategyPrimary, rep.Strategy)
}

func TestReconcileKeepsPrimaryRowsAndOrder(t *testing.T) {
	for n := range 6 {
		var pRows, sRows [][]string
		for i := range n {
			pn := fmt.Sprintf("%d", 500+i)
			pRows = append(pRows, primaryRow(pn, "X", "100", "", ""))
			if i%2 == 0 {
				sRows = append(sRows, secondaryRow(pn, "100", "2024-03-01", "U"))
			}
		}
		// secondary rows that match nothing
		sRows = append(sRows, secondaryRow("999", "100", "2024-03-01", "U"))

		res, _, err := reconcile.Reconcile(
			table.New(primaryHeader, pRows),
			table.New(secondaryHeader, sRows),
		)
		require.NoError(t, err)
		assert.Equal(t, n, res.Len(), "rows must equal primary rows")
		for i := range n {
			assert.Equal(t, fmt.Sprintf("%d", 500+i),
				res.Column("numero_de_personal")[i])
		}
	}
}

func TestReconcileUnmatchedRowsUntouched(t *testing.T) {
	rows := [][]string{
		primaryRow("201", "Ana María", "AB", "2024-01-02", "U1"),
		primaryRow("202", "Luis", "CD", "2024-01-03", "U2"),
	}
	primary := table.New(primaryHeader, rows)
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("999", "AB", "2025-01-01", "U9"),
	})

	res, rep, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Matched)
	for i := range rows {
		assert.Equal(t, rows[i], res.Rows[i])
	}
}

func TestReconcileDoesNotModifyInputs(t *testing.T) {
	primary := table.New(primaryHeader, [][]string{
		primaryRow("0101", "Ana", "100", "2024-01-02", "USER1"),
	})
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("101", "100", "2024-02-10", "USER9"),
	})
	pCopy, sCopy := primary.Clone(), secondary.Clone()

	_, rep, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Matched, "0101 and 101 are the same number")
	assert.Equal(t, pCopy, primary)
	assert.Equal(t, sCopy, secondary)
}

func TestReconcileEmptySecondaryValueKeepsPrimary(t *testing.T) {
	primary := table.New(primaryHeader, [][]string{
		primaryRow("101", "Ana", "100", "2024-01-02", "USER1"),
	})
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("101", "100", "2024-02-10", "nan"),
	})

	res, rep, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10", res.Column("modificado_el")[0])
	assert.Equal(t, "USER1", res.Column("modificado_por")[0])
	assert.Equal(t, 1, rep.UpdatedModifiedAt)
	assert.Equal(t, 0, rep.UpdatedModifiedBy)
}

func TestReconcileAmbiguousSecondary(t *testing.T) {
	primary := table.New(primaryHeader, [][]string{
		primaryRow("101", "Ana", "100", "", ""),
	})
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("101", "100", "2024-02-10", "A"),
		secondaryRow("101", "100", "2024-02-11", "B"),
	})

	res, _, err := reconcile.Reconcile(primary, secondary)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, errcode.AmbiguousMatchError, errCode(t, err))
	assert.Contains(t, errMsg(t, err), "101")
}

func TestReconcileSchemaMismatch(t *testing.T) {
	tests := []struct {
		msg       string
		primary   *table.Table
		secondary *table.Table
		missing   string
	}{
		{
			msg:       "primary without key field",
			primary:   table.New([]string{"Número de personal"}, nil),
			secondary: table.New(secondaryHeader, nil),
			missing:   "numero_id",
		},
		{
			msg:       "secondary without audit field",
			primary:   table.New(primaryHeader, nil),
			secondary: table.New(secondaryHeader[:6], nil),
			missing:   "modificado_por",
		},
	}

	for _, v := range tests {
		_, _, err := reconcile.Reconcile(v.primary, v.secondary)
		require.Error(t, err, v.msg)
		assert.Equal(t, errcode.SchemaMismatchError, errCode(t, err), v.msg)
		assert.Contains(t, errMsg(t, err), v.missing, v.msg)
	}
}

func TestReconcileAddsMissingAuditColumns(t *testing.T) {
	header := primaryHeader[:6]
	primary := table.New(header, [][]string{
		{"101", "Ana", "7", "100", "2024-01-01", "2024-01-05"},
		{"102", "Eva", "7", "100", "2024-01-01", "2024-01-05"},
	})
	secondary := table.New(secondaryHeader, [][]string{
		secondaryRow("101", "100", "2024-02-10", "USER9"),
	})

	res, _, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-10", ""}, res.Column("modificado_el"))
	assert.Equal(t, []string{"USER9", ""}, res.Column("modificado_por"))
}

func TestReconcileNormalizesOutput(t *testing.T) {
	header := append(append([]string(nil), primaryHeader...),
		"Clase absent./pres.", "Días naturales", "Texto")
	primary := table.New(header, [][]string{
		append(primaryRow("000101", "Ana", "0100", "NaT", "None"),
			"0045", "3,0", "<NA>"),
	})
	secondary := table.New(secondaryHeader, nil)

	res, rep, err := reconcile.Reconcile(primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"numero_de_personal", "nombre_del_empleado_o_candidato", "numero_id",
		"clase_absentpres", "inicio_de_validez", "fin_de_validez",
		"modificado_el", "modificado_por", "centro_de_coste",
		"clase_absentpres_1", "dias_naturales", "texto",
	}, res.Header)
	assert.Equal(t, []string{
		"101", "Ana", "7", "100", "2024-01-01", "2024-01-05",
		"", "", "1234", "45", "3", "",
	}, res.Rows[0])
	assert.Equal(t,
		[]string{"Clase absent./pres. -> Clase absent./pres._1"},
		rep.RenamedColumns)
	assert.Equal(t, 12, rep.Columns)
}

func TestFinalizeLeadingZeros(t *testing.T) {
	tbl := table.New(
		[]string{"clase_absentpres_1", "clase_absentpres1", "otro"},
		[][]string{
			{"0A10", "007B", "0010"},
			{"", "nan", "x"},
			{"000", "0", "y"},
		},
	)
	res := reconcile.Finalize(tbl)
	assert.Equal(t, []string{"A10", "7B", "0010"}, res.Rows[0])
	// missing class codes stay missing
	assert.Equal(t, []string{"", "", "x"}, res.Rows[1])
	assert.Equal(t, []string{"0", "0", "y"}, res.Rows[2])
}

func TestParseStrategy(t *testing.T) {
	s, err := reconcile.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StrategyPrimary, s)

	s, err = reconcile.ParseStrategy(" Recency ")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StrategyRecency, s)

	_, err = reconcile.ParseStrategy("newest")
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownStrategyError, errCode(t, err))
}
