package calendar

// FederalHoliday returns the US federal holiday falling on (month, dayOfMonth),
// or "" when there is none. monthStartDOW is the weekday (0=Sunday) of the
// first of the month; every floating holiday is a closed form of it.
func FederalHoliday(month, dayOfMonth, monthStartDOW int) string {
	switch month {
	case 1:
		if dayOfMonth == 1 {
			return "New Years Day"
		}
		if dayOfMonth == thirdMonday(monthStartDOW) {
			return "Martin Luther King Jr Day"
		}
	case 2:
		if dayOfMonth == thirdMonday(monthStartDOW) {
			return "Presidents Day"
		}
	case 5:
		if dayOfMonth == memorialDay(monthStartDOW) {
			return "Memorial Day"
		}
	case 7:
		if dayOfMonth == 4 {
			return "Independence Day"
		}
	case 9:
		if dayOfMonth == laborDay(monthStartDOW) {
			return "Labor Day"
		}
	case 10:
		if dayOfMonth == columbusDay(monthStartDOW) {
			return "Columbus Day"
		}
	case 11:
		if dayOfMonth == 11 {
			return "Veterans Day"
		}
		if dayOfMonth == thanksgiving(monthStartDOW) {
			return "Thanksgiving Day"
		}
	case 12:
		if dayOfMonth == 25 {
			return "Christmas Day"
		}
	}
	return ""
}

func thirdMonday(dow int) int {
	switch dow {
	case 0:
		return 16
	case 1:
		return 15
	default:
		return (7 - dow) + 16
	}
}

// memorialDay is the last Monday of a 31 day month.
func memorialDay(dow int) int {
	switch dow {
	case 0:
		return 30
	case 6:
		return 31
	default:
		return (5 - dow) + 25
	}
}

func laborDay(dow int) int {
	switch dow {
	case 0:
		return 2
	case 1:
		return 1
	default:
		return (6 - dow) + 3
	}
}

func columbusDay(dow int) int {
	if dow == 0 || dow == 1 {
		return 9 - dow
	}
	return 16 - dow
}

// thanksgiving is the fourth Thursday.
func thanksgiving(dow int) int {
	switch {
	case dow <= 4:
		return 26 - dow
	case dow == 5:
		return 28
	default:
		return 27
	}
}
