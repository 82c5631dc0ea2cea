// Package schema keeps the fixed, versioned column definitions of the
// absence report: the composite matching key, audit fields, numeric
// fields, store reference columns and the canonical output order.
//
// All names are canonical, i.e. already passed through normalize.Label.
package schema

import (
	"slices"
	"strings"
)

// Version of the column definitions. Bump it when CanonicalOrder or
// KeyFields change.
const Version = "2"

// Column names used by reconciliation and enrichment.
const (
	PersonnelNumber = "numero_de_personal"
	IDNumber        = "numero_id"
	AbsenceClass    = "clase_absentpres"
	ValidFrom       = "inicio_de_validez"
	ValidTo         = "fin_de_validez"
	ModifiedAt      = "modificado_el"
	ModifiedBy      = "modificado_por"
	CostCenter      = "centro_de_coste"
	Source          = "fuente_datos"

	StoreCode     = "value_tienda"
	StoreName     = "nombre_tienda"
	StoreFallback = "descripcion1"
	StoreCostKey  = "myceco"
)

// Values of the Source column.
const (
	SourceReport = "reporte"
	SourceBase   = "base"
)

// KeyFields form the composite key that identifies an absence record in
// both extracts. The key is not unique.
var KeyFields = []string{
	PersonnelNumber,
	IDNumber,
	AbsenceClass,
	ValidFrom,
	ValidTo,
}

// AuditFields are the only fields the primary-base reconciliation takes
// from the secondary extract.
var AuditFields = []string{ModifiedAt, ModifiedBy}

// numericBases are substrings of columns holding numbers that must be
// rendered canonically. Suffixed duplicates such as "clase_absentpres_1"
// are numeric as well.
var numericBases = []string{
	PersonnelNumber,
	IDNumber,
	AbsenceClass,
	"dias_presencabs",
	"dias_naturales",
	CostCenter,
}

// LeadingZeroFields hold zero-padded class codes. The first name is how
// a duplicated "Clase absent./pres." header is named by this tool, the
// second is how some exporters name it.
var LeadingZeroFields = []string{"clase_absentpres_1", "clase_absentpres1"}

// IsNumericField reports whether a column must be normalized with
// normalize.Numeric.
func IsNumericField(col string) bool {
	for _, b := range numericBases {
		if strings.Contains(col, b) {
			return true
		}
	}
	return false
}

// IsLeadingZeroField reports whether leading zeros of a column are
// stripped.
func IsLeadingZeroField(col string) bool {
	return slices.Contains(LeadingZeroFields, col)
}

// StoreColumn maps a normalized label of the store reference to the name
// it gets in the enriched table.
type StoreColumn struct {
	// Labels are accepted normalized labels, first match wins.
	Labels []string
	// Name is the output column name.
	Name string
}

// StoreColumns lists store reference columns copied to the enriched
// table, in output order. StoreFallback is used only to fill empty store
// names and never reaches the output.
var StoreColumns = []StoreColumn{
	{Labels: []string{"tienda"}, Name: StoreCode},
	{Labels: []string{"alias"}, Name: StoreName},
	{Labels: []string{"region"}, Name: "region"},
	{Labels: []string{"zona"}, Name: "zona"},
	{Labels: []string{"ciudad_corregida"}, Name: "nombre_de_la_tienda"},
	{Labels: []string{"departamento_corregido"}, Name: "direccion_laboral"},
	{Labels: []string{"descripcion1", "descripcion_1"}, Name: StoreFallback},
}

// CanonicalOrder is the column order of the final table. Columns that
// are not listed are appended after these.
var CanonicalOrder = []string{
	PersonnelNumber,
	"nombre_del_empleado_o_candidato",
	IDNumber,
	AbsenceClass,
	"clase_absentpres_1",
	ValidFrom,
	ValidTo,
	"dias_presencabs",
	"dias_naturales",
	"horas_presencabs",
	CostCenter,
	"texto_centro_de_coste",
	"sociedad",
	"division_de_personal",
	"subdivision_de_personal",
	"area_de_personal",
	"grupo_de_personal",
	"posicion",
	"funcion",
	"unidad_organizativa",
	"motivo",
	"diagnostico",
	"creado_el",
	"creado_por",
	ModifiedAt,
	ModifiedBy,
	StoreCode,
	StoreName,
	"region",
	"zona",
	"nombre_de_la_tienda",
	"direccion_laboral",
}
