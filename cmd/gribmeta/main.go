// Command gribmeta looks up GRIB2 parameter names, level names, center names
// and calendar formatting from the command line, using the same tables and
// engine as the labeling service.
//
// Usage:
//
//	gribmeta param --center 8 --discipline 0 --category 0 --subcategory 0
//	gribmeta level --code 103 --value 2
//	gribmeta date --date 20240704 --format "%A %B %d %Y (%v)"
//	gribmeta add-months --date 20240131 --months 1
//	gribmeta center --center 7 --sub-center 14 --process 96
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/urfave/cli/v2"

	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
)

const defaultFormat = "%Y-%m-%dT%H:%M:%SZ"

func main() {
	logger := sharedobs.NewLogger(os.Getenv("LOG_LEVEL"), "text")
	if err := newApp(os.Stdout, logger).Run(os.Args); err != nil {
		logger.Error("gribmeta failed", "error", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer, logger *slog.Logger) *cli.App {
	return &cli.App{
		Name:      "gribmeta",
		Usage:     "GRIB2 parameter, level and calendar lookups",
		UsageText: "gribmeta [global options] command [command options]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tables",
				Usage:   "directory of CSV code tables (default: compiled-in tables)",
				EnvVars: []string{"GRIB_RESOURCE_DIR"},
			},
		},
		Commands: []*cli.Command{
			paramCommand(logger),
			levelCommand(logger),
			centerCommand(logger),
			dateCommand(),
			addMonthsCommand(),
		},
	}
}

func resolverFor(cCtx *cli.Context, logger *slog.Logger) *gribmeta.Resolver {
	dir := cCtx.String("tables")
	if dir == "" {
		return gribmeta.NewResolver(nil)
	}
	return gribmeta.NewResolver(gribmeta.NewCSVProvider(os.DirFS(dir), gribmeta.BuiltinTables{}, logger))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func paramCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "param",
		Usage: "name a parameter from its Section 1 and Section 4 codes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "center", Required: true},
			&cli.IntFlag{Name: "sub-center"},
			&cli.IntFlag{Name: "master-version"},
			&cli.IntFlag{Name: "discipline", Required: true},
			&cli.IntFlag{Name: "template"},
			&cli.IntFlag{Name: "category", Required: true},
			&cli.IntFlag{Name: "subcategory", Required: true},
			&cli.IntFlag{Name: "length", Usage: "length of the time range"},
			&cli.IntFlag{Name: "time-unit", Value: 1, Usage: "time range unit (1 hour, 3 month, 4 year)"},
			&cli.IntFlag{Name: "stat-process"},
			&cli.IntFlag{Name: "time-increment"},
			&cli.IntFlag{Name: "gen-id", Usage: "generating process identifier"},
			&cli.IntFlag{Name: "gen-process", Usage: "type of generating process"},
			&cli.IntFlag{Name: "prob-type"},
			&cli.Float64Flag{Name: "lower"},
			&cli.Float64Flag{Name: "upper"},
			&cli.IntFlag{Name: "percentile"},
			&cli.IntFlag{Name: "derived", Usage: "derived forecast type"},
			&cli.Float64Flag{Name: "surface-value"},
			&cli.Float64Flag{Name: "second-surface-value"},
			&cli.StringFlag{Name: "units", Value: "english", EnvVars: []string{"UNIT_SYSTEM"}},
		},
		Action: func(cCtx *cli.Context) error {
			units, err := gribmeta.ParseUnitSystem(cCtx.String("units"))
			if err != nil {
				return err
			}
			req := gribmeta.Request{
				Center:          cCtx.Int("center"),
				SubCenter:       cCtx.Int("sub-center"),
				MasterVersion:   cCtx.Int("master-version"),
				Discipline:      cCtx.Int("discipline"),
				Template:        cCtx.Int("template"),
				Category:        cCtx.Int("category"),
				Subcategory:     cCtx.Int("subcategory"),
				LengthOfTime:    cCtx.Int("length"),
				TimeRangeUnit:   cCtx.Int("time-unit"),
				StatProcess:     cCtx.Int("stat-process"),
				TimeIncrement:   cCtx.Int("time-increment"),
				GenID:           cCtx.Int("gen-id"),
				GenProcess:      cCtx.Int("gen-process"),
				ProbabilityType: cCtx.Int("prob-type"),
				LowerLimit:      cCtx.Float64("lower"),
				UpperLimit:      cCtx.Float64("upper"),
				Percentile:      cCtx.Int("percentile"),
				DerivedForecast: cCtx.Int("derived"),
			}
			if cCtx.IsSet("surface-value") {
				v := cCtx.Float64("surface-value")
				req.FirstSurface = &v
			}
			if cCtx.IsSet("second-surface-value") {
				v := cCtx.Float64("second-surface-value")
				req.SecondSurface = &v
			}

			label := resolverFor(cCtx, logger).Resolve(req)
			eq, ok := gribmeta.ComputeUnit(label.Convert, label.Unit, units)
			return writeJSON(cCtx.App.Writer, struct {
				Class       gribmeta.Class    `json:"class"`
				Label       gribmeta.Label    `json:"label"`
				Display     gribmeta.Equation `json:"display"`
				UnitDefault bool              `json:"unit_default"`
			}{gribmeta.Classify(req), label, eq, !ok})
		},
	}
}

func levelCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "level",
		Usage: "name a fixed surface (code table 4.5)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "code", Required: true},
			&cli.IntFlag{Name: "center", Value: gribmeta.CenterNCEP},
			&cli.IntFlag{Name: "sub-center"},
			&cli.Float64Flag{Name: "value"},
			&cli.Float64Flag{Name: "second-value"},
		},
		Action: func(cCtx *cli.Context) error {
			r := resolverFor(cCtx, logger)
			code, center, sub := cCtx.Int("code"), cCtx.Int("center"), cCtx.Int("sub-center")

			var second *float64
			if cCtx.IsSet("second-value") {
				v := cCtx.Float64("second-value")
				second = &v
			}
			surface, reserved := r.ResolveSurfaceLevel(code, center, sub)
			short, long := r.LevelName(center, sub, code, cCtx.Float64("value"), second)
			return writeJSON(cCtx.App.Writer, struct {
				Surface  gribmeta.Surface `json:"surface"`
				Reserved bool             `json:"reserved"`
				Short    string           `json:"level_short"`
				Long     string           `json:"level_long"`
			}{surface, reserved, short, long})
		},
	}
}

func centerCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "center",
		Usage: "name an originating center, sub-center and generating process",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "center", Required: true},
			&cli.IntFlag{Name: "sub-center"},
			&cli.IntFlag{Name: "process"},
		},
		Action: func(cCtx *cli.Context) error {
			r := resolverFor(cCtx, logger)
			center := cCtx.Int("center")

			names := map[string]string{}
			if name, ok := r.CenterName(center); ok {
				names["center"] = name
			}
			if cCtx.IsSet("sub-center") {
				if name, ok := r.SubCenterName(center, cCtx.Int("sub-center")); ok {
					names["sub_center"] = name
				}
			}
			if cCtx.IsSet("process") {
				if name, ok := r.ProcessName(center, cCtx.Int("process")); ok {
					names["process"] = name
				}
			}
			if len(names) == 0 {
				return fmt.Errorf("center %d: no names found", center)
			}
			return writeJSON(cCtx.App.Writer, names)
		},
	}
}

func instantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY[MM[DD[HH[MM[SS]]]]] in UTC"},
		&cli.StringFlag{Name: "t", Usage: "epoch seconds"},
		&cli.StringFlag{Name: "format", Value: defaultFormat},
	}
}

// instantFrom reads --date or --t; with neither the current time is used.
func instantFrom(cCtx *cli.Context, engine *calendar.Engine) (float64, error) {
	switch {
	case cCtx.String("date") != "":
		return calendar.ScanDateNumber(cCtx.String("date"))
	case cCtx.String("t") != "":
		v, err := strconv.ParseFloat(cCtx.String("t"), 64)
		if err != nil {
			return 0, fmt.Errorf("parse --t: %w", err)
		}
		return v, nil
	}
	return engine.Now(), nil
}

func engineFor(cCtx *cli.Context) (*calendar.Engine, error) {
	tz := cCtx.String("tz")
	if tz == "" {
		return calendar.NewEngine(nil, nil), nil
	}
	zone, err := calendar.LoadZone(tz)
	if err != nil {
		return nil, err
	}
	return calendar.NewEngine(zone, nil), nil
}

func dateCommand() *cli.Command {
	return &cli.Command{
		Name:  "date",
		Usage: "format an instant with strftime-style directives",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "mode", Value: "utc", Usage: "utc, local-daylight or local-standard", EnvVars: []string{"DISPLAY_MODE"}},
			&cli.StringFlag{Name: "tz", Usage: "IANA zone for local modes", EnvVars: []string{"DISPLAY_TZ"}},
		}, instantFlags()...),
		Action: func(cCtx *cli.Context) error {
			engine, err := engineFor(cCtx)
			if err != nil {
				return err
			}
			mode, err := calendar.ParseDisplayMode(cCtx.String("mode"))
			if err != nil {
				return err
			}
			instant, err := instantFrom(cCtx, engine)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cCtx.App.Writer, engine.FormatInstant(instant, cCtx.String("format"), mode))
			return err
		},
	}
}

func addMonthsCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-months",
		Usage: "move an instant by whole months and years",
		Flags: append([]cli.Flag{
			&cli.IntFlag{Name: "months"},
			&cli.IntFlag{Name: "years"},
		}, instantFlags()...),
		Action: func(cCtx *cli.Context) error {
			instant, err := instantFrom(cCtx, calendar.NewEngine(calendar.FixedZone(0), nil))
			if err != nil {
				return err
			}
			moved, err := calendar.AddMonthsYears(instant, cCtx.Int("months"), cCtx.Int("years"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cCtx.App.Writer, calendar.Format(moved, cCtx.String("format")))
			return err
		},
	}
}
