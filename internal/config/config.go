// Package config reads the command line configuration of the centroid tool
// from flags, CENTROID_ environment variables and an optional env file.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/centroid"
)

// EnvPrefix is the prefix of the environment variables, e.g. CENTROID_NUM_POINTS.
const EnvPrefix = "CENTROID"

// Config is the parsed configuration.
type Config struct {
	Input           string
	Output          string
	IDs             []string
	NumPoints       int
	CentroidRadius  float64
	Concurrency     int
	ValidateNesting bool
	Preview         string
	PreviewWidth    int
	Debug           bool
}

// Parse parses args, followed by the environment and the file named by
// -config. Flags given on the command line take precedence.
func Parse(args []string, output io.Writer) (*Config, error) {
	var (
		cfg = &Config{}
		ids StringSliceFlag
		fs  = flag.NewFlagSet("centroid", flag.ContinueOnError)
	)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&cfg.Input, "input", "-",
		"SVG document to read, - for stdin")
	fs.StringVar(&cfg.Output, "output", "-",
		"Where to write the document with the centroid marker, - for stdout")
	fs.Var(&ids, "id",
		"Comma separated ids of the paths forming the shape. All paths if empty")
	fs.IntVar(&cfg.NumPoints, "num-points", centroid.DefaultSamples,
		"Number of points sampled on each curve segment")
	fs.Float64Var(&cfg.CentroidRadius, "centroid-radius", 10,
		"Radius of the centroid marker")
	fs.IntVar(&cfg.Concurrency, "concurrency", 0,
		"Number of paths linearized in parallel. 0 or 1 for sequential")
	fs.BoolVar(&cfg.ValidateNesting, "validate-nesting", false,
		"Check that every hole lies inside the outermost path")
	fs.StringVar(&cfg.Preview, "preview", "",
		"Write a PNG preview of the shape and its centroid to this file")
	fs.IntVar(&cfg.PreviewWidth, "preview-width", 512,
		"Width of the PNG preview in pixels")
	fs.BoolVar(&cfg.Debug, "debug", false, "Debug mode")
	_ = fs.String("config", ".env", "Retrieve configuration from the given file")

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithIgnoreUndefined(true),
		ff.WithAllowMissingConfigFile(true),
		ff.WithConfigFileParser(ff.EnvParser),
	); err != nil {
		return nil, err
	}
	cfg.IDs = ids

	if cfg.NumPoints < 1 || cfg.NumPoints > centroid.MaxSamples {
		return nil, fmt.Errorf("config: num-points must be between 1 and %d, got %d", centroid.MaxSamples, cfg.NumPoints)
	}
	if cfg.CentroidRadius < 0 {
		return nil, fmt.Errorf("config: centroid-radius must not be negative, got %v", cfg.CentroidRadius)
	}
	if cfg.PreviewWidth < 1 {
		return nil, fmt.Errorf("config: preview-width must be positive, got %d", cfg.PreviewWidth)
	}
	return cfg, nil
}

// Logger creates a logger writing to w. It logs warnings and errors as JSON,
// or everything in development format in debug mode.
func (c *Config) Logger(w io.Writer) *zap.Logger {
	if c.Debug {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel), zap.Development())
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.WarnLevel))
}

// Options returns the computation options for the configuration.
func (c *Config) Options(logger *zap.Logger) centroid.Options {
	return centroid.Options{
		Samples:         c.NumPoints,
		Concurrency:     c.Concurrency,
		ValidateNesting: c.ValidateNesting,
		Logger:          logger,
	}
}
