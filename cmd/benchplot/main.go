// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts the median throughput of RLNC benchmark reports.
//
// Usage:
//
//	benchplot [options] [report.txt | -]
//
// The report is the console output of the RLNC encoder, decoder, or
// recoder benchmarks. Each benchmark is a configuration header such as
//
//	16.00 MB data split into 32 pieces
//
// followed on the next line by its fastest, slowest, median, and mean
// throughputs separated by column delimiters. Benchplot collects the
// median throughputs, groups them by total data size, and draws one
// line per size against the number of pieces.
//
// The report is read from the -report flag if given, otherwise from
// the named file, or from standard input if the file is "-".
//
// The -workload option selects which headers are accepted: any,
// encode, decode, or recode. Encode and decode reject headers with a
// recoding clause; recode requires one. It also selects the chart
// title and the default output file, such as
// rlnc_encoder_median_throughput.png.
//
// The output format follows the extension of -o: png, jpg, tif, svg,
// pdf, or eps.
//
// The -format option additionally prints the collected medians to
// standard output as an aligned text table (text), CSV (csv), an HTML
// page (html), or the accepted benchmarks in canonical report form
// (report).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tliron/kutil/logging"
	"github.com/tliron/kutil/logging/simple"
	"github.com/tliron/kutil/terminal"
	"github.com/tliron/kutil/util"
	"gonum.org/v1/plot/vg"

	"github.com/itzmeanjan/benchplot/benchfmt"
	"github.com/itzmeanjan/benchplot/benchseries"
	"github.com/itzmeanjan/benchplot/benchunit"
)

var exit = util.Exit // runs kutil exit hooks; replaced during testing

var (
	logBackend = newLogBackend()
	log        = logging.GetLogger("benchplot")
)

// newLogBackend installs an unbuffered simple backend, so every line
// is written before benchplot returns.
func newLogBackend() *simple.Backend {
	backend := simple.NewBackend()
	backend.SetBuffered(false)
	logging.SetBackend(backend)
	return backend
}

// configureLogging sends log lines at or above verbosity to w.
func configureLogging(verbosity int, w io.Writer) {
	terminal.Stderr = w
	logBackend.Configure(verbosity, nil)
}

// errUsage is returned for bad command lines. The flag set has
// already printed the reason and the usage message.
var errUsage = eris.New("usage")

func main() {
	err := benchplot(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil, err == flag.ErrHelp:
		exit(0)
	case err == errUsage:
		exit(2)
	default:
		fail("benchplot: %v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	exit(1)
}

func warn(format string, args ...interface{}) {
	log.Warning(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

var formats = map[string]bool{
	"none":   true,
	"text":   true,
	"csv":    true,
	"html":   true,
	"report": true,
}

func benchplot(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: benchplot [options] [report.txt | -]\n")
		fmt.Fprintf(flags.Output(), "options:\n")
		flags.PrintDefaults()
	}

	var (
		workloadName = "any"
		unitName     = benchunit.GiBPerSec.String()
		output       = ""
		report       = ""
		format       = "none"
		wide         = false
		title        = ""
		dpi          = 300
		widthCm      = 30.48
		heightCm     = 17.78
		noChart      = false
		verbosity    = 0
	)
	flags.StringVar(&workloadName, "workload", workloadName, "accept benchmarks of `workload`: any, encode, decode, or recode")
	flags.StringVar(&unitName, "unit", unitName, "plot medians in `unit`, such as MiB/s")
	flags.StringVar(&output, "o", output, "write the chart to `file` (default depends on -workload)")
	flags.StringVar(&report, "report", report, "read the report from `text` instead of a file")
	flags.StringVar(&format, "format", format, "print the medians to stdout as `form`: none, text, csv, html, or report")
	flags.BoolVar(&wide, "wide", wide, "print one CSV column per data size (with -format csv)")
	flags.StringVar(&title, "title", title, "chart `title` (default depends on -workload)")
	flags.IntVar(&dpi, "dpi", dpi, "`resolution` of raster charts")
	flags.Float64Var(&widthCm, "width", widthCm, "chart width in `cm`")
	flags.Float64Var(&heightCm, "height", heightCm, "chart height in `cm`")
	flags.BoolVar(&noChart, "nochart", noChart, "do not write a chart")
	flags.IntVar(&verbosity, "v", verbosity, "log `verbosity`: -1 silences warnings, 1 adds progress, 2 adds debugging")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return errUsage
	}
	if flags.NArg() > 1 {
		fmt.Fprintf(stderr, "too many arguments\n")
		flags.Usage()
		return errUsage
	}
	usageErr := func(format string, args ...interface{}) error {
		fmt.Fprintf(stderr, format+"\n", args...)
		flags.Usage()
		return errUsage
	}

	workload, err := benchfmt.ParseWorkload(workloadName)
	if err != nil {
		return usageErr("%v", err)
	}
	unit, err := benchunit.ParseUnit(unitName)
	if err != nil {
		return usageErr("%v", err)
	}
	if !formats[format] {
		return usageErr("unknown -format %q", format)
	}
	if widthCm <= 0 || heightCm <= 0 {
		return usageErr("-width and -height must be positive")
	}
	if output == "" {
		output = workload.DefaultOutput()
	}

	configureLogging(verbosity, stderr)

	in := benchfmt.Input{Text: report, Path: flags.Arg(0), AllowStdin: true, Stdin: stdin}
	text, err := in.Load()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	var rw *benchfmt.Writer
	if format == "report" {
		rw = benchfmt.NewWriter(out)
	}

	b := benchseries.NewBuilder(&benchseries.BuilderOptions{Unit: unit, Warn: warn})
	r := benchfmt.NewReader(strings.NewReader(text), in.Name(), benchfmt.NewPatterns(workload))
	for r.Scan() {
		res := r.Result()
		b.Add(res)
		if rw != nil {
			if err := rw.Write(res); err != nil {
				return err
			}
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	if n := r.Dropped(); n > 0 {
		log.Debugf("%s: %d configuration headers without a throughput row", in.Name(), n)
	}

	d := b.Done()
	if d.Empty() {
		kind := "benchmark"
		if workload != benchfmt.Any {
			kind = workload.String() + " benchmark"
		}
		log.Warningf("%s: no %s results found", in.Name(), kind)
	} else {
		log.Infof("%s: %d results in %d series", in.Name(), d.NumSamples(), d.Len())
	}

	switch format {
	case "text":
		err = d.WriteText(out)
	case "csv":
		opt := benchseries.CSV_PLAIN
		if wide {
			opt = benchseries.CSV_WIDE
		}
		err = d.ToCsv(out, opt)
	case "html":
		err = d.WriteHTML(out, workload.Title())
	}
	if err != nil {
		return err
	}

	if noChart {
		return out.Flush()
	}

	opts := benchseries.DefaultChartOptions(workload, unit)
	if title != "" {
		opts.Title = title
	}
	opts.DPI = dpi
	opts.Width = vg.Length(widthCm) * vg.Centimeter
	opts.Height = vg.Length(heightCm) * vg.Centimeter
	if err := d.Chart(output, opts); err != nil {
		return err
	}
	// Keep stdout parseable when it carries a dump.
	if format == "none" {
		fmt.Fprintf(out, "Plot successfully saved to %s\n", output)
	} else {
		fmt.Fprintf(stderr, "Plot successfully saved to %s\n", output)
	}
	return out.Flush()
}
