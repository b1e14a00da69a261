package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	idx "github.com/hashicorp/go-idx"
	"github.com/pkg/errors"
)

// CLI are the cli parameters for the idxinfo binary
type CLI struct {
	Directory      string           `arg:"" name:"directory" default:"." help:"Directory with IDX image and label files." type:"existingdir"`
	Images         string           `short:"i" optional:"" help:"Image file to load. (default: first image file found in directory)"`
	FixOrientation bool             `short:"r" help:"Fix the orientation of the images (EMNIST)."`
	MaxPayloadSize int64            `optional:"" default:"1073741824" help:"Maximum decompressed payload size (in bytes). (disable check: -1)"`
	ScanSuffix     string           `optional:"" default:"ubyte" help:"File name suffix of the files to scan."`
	Strict         bool             `short:"S" help:"Fail if a payload does not match the dimensions of its header."`
	Metrics        bool             `short:"M" optional:"" default:"false" help:"Print telemetry data to log after each decode."`
	Verbose        bool             `short:"v" optional:"" help:"Verbose logging."`
	Version        kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into go-idx as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Inspect IDX (MNIST) dataset files"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := execute(ctx, &cli, logger, os.Stdout); err != nil {
		logger.Error("idxinfo failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

// execute scans the directory, pairs the images with a label file and
// prints a summary of both datasets to out.
func execute(ctx context.Context, cli *CLI, logger *slog.Logger, out io.Writer) error {

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *idx.TelemetryData) {
		if cli.Metrics {
			logger.Info("decode finished", "telemetry", td)
		}
	}

	// process cli params
	cfg := idx.NewConfig(
		idx.WithLogger(logger),
		idx.WithMaxPayloadSize(cli.MaxPayloadSize),
		idx.WithScanSuffix(cli.ScanSuffix),
		idx.WithStrictPayloadLength(cli.Strict),
		idx.WithTelemetryHook(telemetryToLog),
	)

	set, err := idx.Scan(ctx, cli.Directory, cfg)
	if err != nil {
		return errors.Wrapf(err, "cannot scan %s", cli.Directory)
	}

	imagePath := cli.Images
	if imagePath == "" {
		imagePath = set.Images[0]
	}
	labelPath, err := idx.PickLabel(imagePath, set.Labels)
	if err != nil {
		return errors.Wrapf(err, "cannot pick labels for %s", imagePath)
	}

	pair, err := idx.LoadPair(ctx, imagePath, labelPath, cli.FixOrientation, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "images: %s %v\n", pair.ImagesPath, pair.Images.Dimensions)
	fmt.Fprintf(out, "labels: %s %v\n", pair.LabelsPath, pair.Labels.Dimensions)
	fmt.Fprintf(out, "items:  %d\n", pair.Images.Len())
	if pair.Warning != nil {
		fmt.Fprintf(out, "warning: %v\n", pair.Warning)
	}
	return nil
}
