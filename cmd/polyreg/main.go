package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"polyreg/pkg/data"
	"polyreg/pkg/pipeline"
	"polyreg/pkg/report"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input            : Path to input CSV file. Default = sample.csv
// --sep              : Field delimiter. Default = ","
// --features         : Comma separated feature columns. Default = value,age
// --target           : Target column. Default = name
// --degree           : Polynomial feature degree. Default = 2
// --interaction-only : Only products of distinct features (no powers)
// --no-bias          : Drop the constant column from the expansion
// --no-intercept     : Fit through the origin
// --encode-target    : Label-encode a non-numeric target instead of failing
// --predictions      : Optional CSV path for actual vs predicted values
// --plot             : Optional image path (.png, .svg, .pdf) for the fit plot
// --v                : Debug logging on stderr
//
// Example:
//   go run ./cmd/polyreg --input sample.csv --degree 3 --plot fit.png
//
// ---------------------------------------------------------------------
//

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "polyreg:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polyreg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := pipeline.DefaultSchema()
	inputPath := fs.String("input", "sample.csv", "Path to input CSV file")
	sep := fs.String("sep", ",", "Field delimiter")
	features := fs.String("features", strings.Join(defaults.Features, ","), "Comma separated feature columns")
	target := fs.String("target", defaults.Target, "Target column")
	degree := fs.Int("degree", 2, "Degree for polynomial features")
	interactionOnly := fs.Bool("interaction-only", false, "Only products of distinct features")
	noBias := fs.Bool("no-bias", false, "Drop the constant column from the expansion")
	noIntercept := fs.Bool("no-intercept", false, "Fit without an intercept")
	encodeTarget := fs.Bool("encode-target", false, "Label-encode a non-numeric target")
	predPath := fs.String("predictions", "", "Path to save predictions CSV")
	plotPath := fs.String("plot", "", "Path to save the fit plot")
	verbose := fs.Bool("v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	comma, size := utf8.DecodeRuneInString(*sep)
	if size == 0 || size != len(*sep) {
		return fmt.Errorf("-sep must be a single character, got %q", *sep)
	}

	schema := pipeline.Schema{Target: strings.TrimSpace(*target)}
	for _, f := range strings.Split(*features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			schema.Features = append(schema.Features, f)
		}
	}
	if len(schema.Features) == 0 {
		return fmt.Errorf("-features must name at least one column")
	}

	table, err := data.ReadCSV(*inputPath, data.Options{Comma: comma})
	if err != nil {
		return err
	}
	logger.Debug("loaded", "path", *inputPath, "rows", table.Len(), "columns", len(table.Header))

	cfg := pipeline.Config{
		Degree:          *degree,
		InteractionOnly: *interactionOnly,
		IncludeBias:     !*noBias,
		FitIntercept:    !*noIntercept,
		EncodeTarget:    *encodeTarget,
		Logger:          logger,
	}
	res, err := pipeline.Run(table, schema, cfg)
	if err != nil {
		return err
	}

	if err := report.PrintCoefficients(stdout, res.Coef, res.Intercept); err != nil {
		return err
	}

	if *predPath != "" {
		if err := report.WritePredictions(*predPath, schema.Features, schema.Target, res.X, res.Y, res.Predictions); err != nil {
			return fmt.Errorf("write predictions: %w", err)
		}
		logger.Info("predictions saved", "path", *predPath)
	}
	if *plotPath != "" {
		if err := report.PlotFit(*plotPath, schema.Target, res.Y, res.Predictions); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		logger.Info("plot saved", "path", *plotPath)
	}
	return nil
}
