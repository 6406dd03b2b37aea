package gribmeta

import "sort"

// TableProvider supplies the code tables the resolver consults. Lookups
// report whether the code was found; Surface always returns an entry and
// reports whether the code is reserved.
type TableProvider interface {
	Parameter(discipline, category, subcategory int) (Parameter, bool)
	LocalParameter(center, subCenter, discipline, category, subcategory int) (Parameter, bool)
	Surface(code, center, subCenter int) (Surface, bool)
	CenterName(center int) (string, bool)
	SubCenterName(center, subCenter int) (string, bool)
	ProcessName(center, process int) (string, bool)
}

// BuiltinTables serves the tables compiled into the binary. The zero value
// is ready to use.
type BuiltinTables struct{}

var _ TableProvider = BuiltinTables{}

// Parameter indexes the generic table for (discipline, category) by number.
// Rows without a short name use the long name in its place.
func (BuiltinTables) Parameter(discipline, category, subcategory int) (Parameter, bool) {
	rows, ok := wmoParameters[tableKey{Discipline: discipline, Category: category}]
	if !ok || subcategory < 0 || subcategory >= len(rows) {
		return Parameter{}, false
	}
	p := rows[subcategory]
	if p.ShortName == "" {
		p.ShortName = p.Name
	}
	return p, true
}

// ParameterTable is one (discipline, category) block of code table 4.2.
// Rows are indexed by parameter number.
type ParameterTable struct {
	Discipline int
	Category   int
	Rows       []Parameter
}

// ParameterTables lists the compiled-in generic tables ordered by
// discipline then category. Rows are copies.
func (BuiltinTables) ParameterTables() []ParameterTable {
	out := make([]ParameterTable, 0, len(wmoParameters))
	for k, rows := range wmoParameters {
		out = append(out, ParameterTable{
			Discipline: k.Discipline,
			Category:   k.Category,
			Rows:       append([]Parameter(nil), rows...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Discipline != out[j].Discipline {
			return out[i].Discipline < out[j].Discipline
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// LocalParameter scans the local table selected by the center pair.
func (BuiltinTables) LocalParameter(center, subCenter, discipline, category, subcategory int) (Parameter, bool) {
	for _, lp := range localTable(center, subCenter) {
		if lp.Discipline == discipline && lp.Category == category && lp.Subcategory == subcategory {
			return lp.Parameter, true
		}
	}
	return Parameter{}, false
}

func localTable(center, subCenter int) []LocalParameter {
	switch center {
	case CenterNCEP:
		if subCenter == SubCenterHPC {
			return hpcLocal
		}
		return ncepLocal
	case CenterNWSTG:
		if subCenter == SubCenterMissing || subCenter == 0 {
			return ndfdLocal
		}
	case CenterOAR:
		return mrmsLocal
	}
	return nil
}

func (BuiltinTables) Surface(code, center, _ int) (Surface, bool) {
	return surfaceIndex(code, center)
}

func (BuiltinTables) CenterName(center int) (string, bool) {
	name, ok := centerNames[center]
	return name, ok
}

func (BuiltinTables) SubCenterName(center, subCenter int) (string, bool) {
	name, ok := subCenterNames[[2]int{center, subCenter}]
	return name, ok
}

func (BuiltinTables) ProcessName(center, process int) (string, bool) {
	name, ok := processNames[[2]int{center, process}]
	return name, ok
}
