// Package gribmeta names GRIB2 parameters and levels.
//
// A [Resolver] turns the Section 1 and Section 4 fields of a message into a
// short name, a comment and a bracketed unit. Lookups cascade:
//
//  1. special cases that depend on more than the table row (NCEP ozone
//     averages, the dust/smoke aerosol split, NDFD and MOS naming),
//  2. the generic WMO code table 4.2 for the discipline and category,
//  3. the local table of the originating center and sub-center,
//  4. a fallback of "unknown" (or "ProbUnknown") with the raw codes in the
//     comment.
//
// Probability templates (4.5, 4.9) and percentile templates (4.6, 4.10) take
// their own naming paths; see [Classify].
//
// Tables come from a [TableProvider]. [BuiltinTables] is compiled in;
// [CSVProvider] reads the same tables from CSV files in an fs.FS and falls back
// to another provider for files it does not have.
package gribmeta
