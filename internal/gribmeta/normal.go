package gribmeta

import "fmt"

const log10MassUnit = "[log10(10^-6g/m^3)]"

// accumulated parameters carry the statistics period in their name:
// hydrologic PoP, thunderstorm probability, APCP and the NDFD outlook field.
var accumulated = map[[3]int]bool{
	{1, 1, 2}:    true,
	{0, 19, 2}:   true,
	{0, 1, 8}:    true,
	{0, 19, 203}: true,
}

// ResolveNormal names a parameter from a plain (non probability,
// non percentile) template. Checks run in order: the ozone average and NCEP
// dust/smoke special cases, the generic table with its MOS and NDFD
// renames, the local table, then the "unknown" fallback.
func (r *Resolver) ResolveNormal(req Request) Label {
	if l, ok := ozoneAverage(req); ok {
		return l
	}
	if l, ok := aerosolLayer(req); ok {
		return l
	}

	if p, ok := r.generic(req); ok {
		return normalGeneric(req, p)
	}

	if p, ok := r.local(req); ok {
		return Label{Name: p.ShortName, Comment: p.Name, Unit: bracket(p.Unit), Convert: p.Convert}
	}

	return Label{
		Name:    "unknown",
		Comment: fmt.Sprintf("(prodType %d, cat %d, subcat %d)", req.Discipline, req.Category, req.Subcategory),
		Unit:    "[-]",
		Convert: ConvertNone,
	}
}

func ozoneAverage(req Request) (Label, bool) {
	if req.Discipline != 0 || req.Template != 8 || req.Category != 14 || req.Subcategory != 193 {
		return Label{}, false
	}
	l := Label{Name: "AVGOZCON", Comment: "Average Ozone Concentration", Unit: "[PPB]", Convert: ConvertNone}
	if req.LengthOfTime > 0 {
		s := spanOf(req)
		l.Name = "Ozone" + s.suffix()
		switch s.unit {
		case timeUnitMonth:
			l.Comment = fmt.Sprintf("%d mon Average Ozone Concentration", s.length)
		case timeUnitYear:
			l.Comment = fmt.Sprintf("%d yr Average Ozone Concentration", s.length)
		default:
			l.Comment = fmt.Sprintf("%d hr Average Ozone Concentration", s.length)
		}
	}
	return l, true
}

// aerosolLayer splits NCEP 0.13.195 into dust (generating process 6) or
// smoke, and into a surface or column field by the depth of the layer.
func aerosolLayer(req Request) (Label, bool) {
	if req.Center != CenterNCEP || req.Discipline != 0 || req.Category != 13 || req.Subcategory != 195 {
		return Label{}, false
	}
	if req.FirstSurface == nil || req.SecondSurface == nil {
		return Label{}, false
	}

	kind, what := "smoke", "smoke from fires"
	if req.GenID == 6 {
		kind, what = "dust", "dust"
	}

	delta := *req.FirstSurface - *req.SecondSurface
	switch {
	case delta >= -100 && delta <= 100:
		return Label{Name: kind + "s", Comment: "Surface level " + what, Unit: log10MassUnit, Convert: ConvertLog10}, true
	case delta >= -5000 && delta <= 5000:
		return Label{Name: kind + "c", Comment: "Average vertical column " + what, Unit: log10MassUnit, Convert: ConvertLog10}, true
	}
	return Label{}, false
}

func normalGeneric(req Request, p Parameter) Label {
	l := Label{Name: p.ShortName, Comment: p.Name, Unit: bracket(p.Unit), Convert: p.Convert}
	ndfd, mos := IsNDFD(req.Center, req.SubCenter), IsMOS(req.Center, req.SubCenter)
	s := spanOf(req)

	if mos {
		var base string
		switch p.ShortName {
		case "APCP":
			base = "QPF"
		case "ASNOW":
			base = "SnowAmt"
		}
		if base != "" {
			l.Name = base + s.suffix()
			l.Comment = s.prefix() + " " + p.Name
			return l
		}
	}

	if ndfd || mos {
		if p.ShortName == "EVP" {
			if req.StatProcess == 10 {
				l.Name = fmt.Sprintf("EvpDep%02d", req.LengthOfTime)
				l.Comment = fmt.Sprintf("%02d hr Evapo-Transpiration departure from normal", req.LengthOfTime)
			} else {
				l.Name = fmt.Sprintf("Evp%02d", req.LengthOfTime)
				l.Comment = fmt.Sprintf("%02d hr Evapo-Transpiration", req.LengthOfTime)
			}
			return l
		}
		if name, ok := ndfdAbbreviation(p.ShortName); ok {
			l.Name = name
			return l
		}
	}

	if accumulated[[3]int{req.Discipline, req.Category, req.Subcategory}] && req.LengthOfTime > 0 {
		l.Name = p.ShortName + s.suffix()
		l.Comment = s.prefix() + " " + p.Name
	}
	return l
}
