// Package calendar converts between epoch seconds and civil dates on the
// proleptic Gregorian calendar, formats instants with strftime-like
// directives, and applies the US daylight saving rules.
//
// # Instants
//
// An instant is a float64 count of seconds since 1970-01-01T00:00:00 UTC.
// Years from -10000 to 10000 are supported. Every exported entry point takes
// a UTC instant; functions that need local time take an explicit zone offset
// and convert internally.
//
// # Zone offsets
//
// A zone offset is the number of hours to ADD to local time to get UTC, so US
// Eastern is +5 and Central Europe is -1. The host offset is resolved once,
// by a [ZoneProvider], from the local rendering of 1970-01-02 00:00. The
// second of January keeps zones west of UTC from rolling into 1969.
//
// # Daylight saving
//
// Before 2007 US daylight time ran from the first Sunday in April to the last
// Sunday in October. From 2007 it runs from the second Sunday in March to the
// first Sunday in November. Both switch at 02:00 local standard time. See
// [IsDaylightSaving].
//
// # Format directives
//
//	%a %A   weekday, short and full      %b %h %B  month, short and full
//	%d %e   day of month, padded or not  %m %E     month number, %02d or %2d
//	%Y %y   year, 4 or 2 digits          %j        day of year, 001-366
//	%H %G   hour 00-23, %02d or %2d      %I %p     hour 01-12 and AM/PM
//	%M %S   minute, second               %f        seconds with hundredths
//	%w      weekday number, 0=Sunday     %U %W     week of year from Sun/Mon
//	%D      %m/%d/%Y                     %T        %H:%M:%S
//	%r      %I:%M:%S %p                  %R        %H:%M
//	%v      US federal holiday, else %A  %n %t %%  newline, tab, percent
package calendar
