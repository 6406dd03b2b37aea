// Package domain models GRIB2 message metadata as it moves through the
// labeling pipeline.
//
// # Data Source
//
// An upstream decoder reads GRIB2 files, extracts Section 1 (originating
// center, sub-center, table versions, reference time) and Section 4 (product
// definition template, parameter category and number, statistics period,
// probability and percentile fields, fixed surfaces) of every message, and
// publishes each message's fields as flat JSON to the Kafka source topic.
// Times arrive as epoch seconds in UTC.
//
// # Labeling
//
// [Labeler.Label] turns a [GribRecord] into a [LabeledRecord]:
//
//	element, comment, unit   gribmeta.Resolver.Resolve (template dispatch,
//	                         NDFD/MOS overrides, "unknown" fallback)
//	display unit equation    gribmeta.ComputeUnit for the configured system
//	level names              gribmeta.Resolver.LevelName, e.g. "2-HTGL"
//	center/process names     code tables 0 and C, plus the local process list
//	times                    calendar.Format with the configured layout; the
//	                         local valid time uses the record's own zone when
//	                         it carries lat/lon
//	valid_day                "%v": the US federal holiday, else the weekday
//
// An "unknown" element is a valid result, not an error. Only records that do
// not parse or carry negative table codes are rejected.
//
// # ID Generation
//
// Record IDs are the first 16 hex characters of a SHA-256 over the fields that
// identify a message (codes, surfaces, times, source and message index), so a
// replayed file produces the same keys. See [generateID].
package domain
