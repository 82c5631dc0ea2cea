package schema_test

import (
	"testing"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
	"github.com/Jeysshonb/Validador-nomina/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestNamesAreCanonical(t *testing.T) {
	var names []string
	names = append(names, schema.KeyFields...)
	names = append(names, schema.AuditFields...)
	names = append(names, schema.CanonicalOrder...)
	names = append(names, schema.LeadingZeroFields...)
	for _, sc := range schema.StoreColumns {
		names = append(names, sc.Name)
		names = append(names, sc.Labels...)
	}
	for _, n := range names {
		assert.Equal(t, n, normalize.Label(n), "%s is not canonical", n)
	}
}

func TestCanonicalOrderIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range schema.CanonicalOrder {
		assert.False(t, seen[c], "duplicate canonical column %s", c)
		seen[c] = true
	}
	assert.NotContains(t, schema.CanonicalOrder, schema.StoreFallback)
	assert.NotContains(t, schema.CanonicalOrder, schema.Source)
	assert.Equal(t, "direccion_laboral",
		schema.CanonicalOrder[len(schema.CanonicalOrder)-1])
}

func TestIsNumericField(t *testing.T) {
	tests := []struct {
		col string
		res bool
	}{
		{"numero_de_personal", true},
		{"numero_id", true},
		{"clase_absentpres", true},
		{"clase_absentpres_1", true},
		{"dias_naturales", true},
		{"centro_de_coste", true},
		{"texto_centro_de_coste", true},
		{"modificado_el", false},
		{"nombre_del_empleado_o_candidato", false},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, schema.IsNumericField(v.col), v.col)
	}
}

func TestIsLeadingZeroField(t *testing.T) {
	assert.True(t, schema.IsLeadingZeroField("clase_absentpres_1"))
	assert.True(t, schema.IsLeadingZeroField("clase_absentpres1"))
	assert.False(t, schema.IsLeadingZeroField("clase_absentpres"))
}
