package gribmeta

import "fmt"

// ResolvePercentile names a parameter from a percentile template by
// appending the two digit percentile to the short name.
func (r *Resolver) ResolvePercentile(req Request) Label {
	s := spanOf(req)
	comment := func(p Parameter) string {
		c := fmt.Sprintf("%s Percentile(%d)", p.Name, req.Percentile)
		if req.LengthOfTime > 0 {
			c = s.prefix() + " " + c
		}
		return c
	}

	if p, ok := r.generic(req); ok {
		l := Label{
			Name:    fmt.Sprintf("%s%02d", p.ShortName, req.Percentile),
			Comment: comment(p),
			Unit:    bracket(p.Unit),
			Convert: p.Convert,
		}
		if IsNDFD(req.Center, req.SubCenter) || IsMOS(req.Center, req.SubCenter) {
			if p.ShortName == "ASNOW" {
				// Snow amount exceedance: the period then the percentile, each
				// with the period's unit letter.
				l.Name = "Snow" + s.suffix() + "e" + span{length: req.Percentile, unit: s.unit}.suffix()
				l.Comment = s.prefix() + " " + fmt.Sprintf("%s Percentile(%d)", p.Name, req.Percentile)
				return l
			}
			if name, ok := ndfdAbbreviation(p.ShortName); ok {
				l.Name = fmt.Sprintf("%s%02d", name, req.Percentile)
			}
		}
		return l
	}

	if p, ok := r.local(req); ok {
		l := Label{Comment: comment(p), Unit: bracket(p.Unit), Convert: p.Convert}
		switch {
		case endsInTwoDigits(p.ShortName):
			l.Name = p.ShortName
		case p.ShortName == "Surge" || p.ShortName == "SURGE":
			l.Name = fmt.Sprintf("%s%02d", p.ShortName, 100-req.Percentile)
		default:
			l.Name = fmt.Sprintf("%s%02d", p.ShortName, req.Percentile)
		}
		return l
	}

	return Label{
		Name:    "unknown",
		Comment: fmt.Sprintf("(prodType %d, cat %d, subcat %d)", req.Discipline, req.Category, req.Subcategory),
		Unit:    "[-]",
		Convert: ConvertNone,
	}
}

// endsInTwoDigits reports names that already carry a percentile or
// exceedance value.
func endsInTwoDigits(name string) bool {
	n := len(name)
	return n >= 2 && isDigit(name[n-1]) && isDigit(name[n-2])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
