package gribmeta

import (
	"fmt"
	"math"
)

const (
	// A hundredth of an inch of rain in millimetres.
	hundredthInchMM = .254
	// Early NDFD files wrote the 0.01 inch threshold as 300 (scale -2).
	legacyHundredthInch = 300
)

// ResolveProbability names a parameter from a probability template. The
// unit is always "[%]" and the conversion is always none.
func (r *Resolver) ResolveProbability(req Request) Label {
	upper := clampThreshold(req.UpperLimit)
	ndfd, mos := IsNDFD(req.Center, req.SubCenter), IsMOS(req.Center, req.SubCenter)
	s := spanOf(req)

	label := func(name, comment string) Label {
		return Label{Name: name, Comment: comment, Unit: "[%]", Convert: ConvertNone}
	}

	if ndfd || mos {
		switch {
		case req.Discipline == 0 && req.Category == 1 && req.Subcategory == 8:
			name, comment := precipitationProbability(req, upper)
			return label(name, comment)
		case req.Discipline == 10 && req.Category == 3 && req.Subcategory == 192:
			feet := int(upper/0.3048 + .5)
			return label(
				fmt.Sprintf("ProbSurge%02d%s", feet, incrementSuffix(req.TimeIncrement)),
				fmt.Sprintf("%s Prob of Hurricane Storm Surge > %s m", s.prefix(), fmtG(upper)),
			)
		}
	}
	if ndfd && req.Discipline == 0 && req.Category == 2 && req.Subcategory == 1 {
		knots := int(upper*3600./1852. + .5)
		return label(
			fmt.Sprintf("ProbWindSpd%02d%s", knots, incrementSuffix(req.TimeIncrement)),
			fmt.Sprintf("%s Prob of Wind speed > %s m/s", s.prefix(), fmtG(upper)),
		)
	}

	if p, ok := r.generic(req); ok {
		name, comment := probabilityName(req, p, upper, ndfd || mos)
		return label(name, comment)
	}
	if p, ok := r.local(req); ok {
		name, comment := probabilityName(req, p, upper, false)
		return label(name, comment)
	}

	return label("ProbUnknown",
		fmt.Sprintf("Prob of (prodType %d, cat %d, subcat %d)", req.Discipline, req.Category, req.Subcategory))
}

// clampThreshold zeroes an upper limit that would overflow once scaled
// from inches to millimetres.
func clampThreshold(upper float64) float64 {
	scaled := upper * 25.4
	if upper > scaled || scaled > math.MaxInt32 || scaled < math.MinInt32 || math.IsNaN(scaled) {
		return 0
	}
	return upper
}

// incrementSuffix is "i" for incremental and "c" for cumulative periods.
func incrementSuffix(timeIncrement int) string {
	if timeIncrement == 2 {
		return "i"
	}
	return "c"
}

// precipitationProbability names NDFD and MOS probability of precipitation:
// below average (type 0), above average (type 3), or exceeding a threshold.
func precipitationProbability(req Request, upper float64) (name, comment string) {
	s := spanOf(req)
	timed := req.LengthOfTime > 0

	switch req.ProbabilityType {
	case 0, 3:
		dir, word := "Blw", "below"
		if req.ProbabilityType == 3 {
			dir, word = "Abv", "above"
		}
		if !timed {
			return "ProbPrcp" + dir, "Prob of precip " + word + " average"
		}
		return "ProbPrcp" + dir + s.suffix(), s.prefix() + " Prob of Precip " + word + " average"
	}

	hundredths := int(upper/hundredthInchMM + .5)
	inches := fmtG(upper / 25.4)
	if !timed {
		name = "PoP"
		if upper != hundredthInchMM {
			name = fmt.Sprintf("PoP-p%03d", hundredths)
		}
		return name, "Prob of Precip > " + inches + " In."
	}

	name = "PoP" + s.suffix()
	switch s.unit {
	case timeUnitMonth, timeUnitYear:
		if upper != hundredthInchMM {
			name = fmt.Sprintf("%s-%03d", name, hundredths)
		}
	default:
		if upper != hundredthInchMM && upper != legacyHundredthInch {
			name = fmt.Sprintf("%s-%03d", name, hundredths)
		}
		if upper == legacyHundredthInch {
			inches = "0.01"
		}
	}
	return name, s.prefix() + " Prob of Precip > " + inches + " In."
}

// probabilityName prefixes "Prob" to a table row and describes the event.
// averageWording switches temperature probabilities to above/below average
// names for NDFD and MOS.
func probabilityName(req Request, p Parameter, upper float64, averageWording bool) (name, comment string) {
	s := spanOf(req)
	timed := req.LengthOfTime > 0

	name = "Prob" + p.ShortName
	comment = "Prob of " + p.Name + " "
	if timed {
		name += s.suffix()
		comment = s.prefix() + " " + comment
	}

	average := func(dir, word string) (string, string) {
		n := "Prob" + p.ShortName + dir
		if timed {
			n += s.suffix()
		}
		return n, comment + word + " average"
	}
	temperature := averageWording && p.ShortName == "TMP"
	lower := fmtG(req.LowerLimit)

	switch req.ProbabilityType {
	case 0:
		if temperature {
			return average("Blw", "below")
		}
		return name, comment + "< " + lower + " " + p.Unit
	case 1:
		if temperature {
			return average("Abv", "above")
		}
		return name, comment + "> " + fmtG(upper) + " " + p.Unit
	case 2:
		return name, comment + ">= " + lower + ", < " + fmtG(upper) + " " + p.Unit
	case 3:
		if temperature {
			return average("Abv", "above")
		}
		return name, comment + "> " + lower + " " + p.Unit
	case 4:
		if temperature {
			return average("Blw", "below")
		}
		return name, comment + "< " + fmtG(upper) + " " + p.Unit
	}
	return name, comment + p.Unit
}
