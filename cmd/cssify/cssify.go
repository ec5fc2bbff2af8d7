package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/wbrown/img2css"
	"github.com/wbrown/img2css/imageutil"
)

var (
	outputPath      string
	container       string
	threshold       int
	countRuns       bool
	alphabet        string
	targetWidth     int
	matteHex        string
	reconstructPath string
	showStats       bool
)

var rootCmd = &cobra.Command{
	Use:               "cssify [flags] <image-file>",
	Short:             "Render an image as CSS-styled markup",
	Args:              cobra.ExactArgs(1),
	Version:           "0.1.0",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: setup,
	RunE:              run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "",
		"write markup to this file instead of stdout (.gz and .zst compress)")
	flags.StringVar(&container, "container", img2css.DefaultContainer,
		"container class name scoping the generated rules")
	flags.IntVar(&threshold, "threshold", img2css.DefaultThreshold,
		"minimum occurrences for a color to share a class")
	flags.BoolVar(&countRuns, "count-runs", false,
		"count color frequency over runs instead of raw pixels")
	flags.StringVar(&alphabet, "alphabet", img2css.DefaultAlphabet,
		"symbol set for generated class names")
	flags.IntVar(&targetWidth, "width", 0,
		"scale the image to this width before converting (0 keeps the source size)")
	flags.StringVar(&matteHex, "matte", "#ffffff",
		"matte color composited under transparent pixels")
	flags.StringVar(&reconstructPath, "reconstruct", "",
		"write a PNG re-expanded from the compressed runs to this path")
	flags.BoolVar(&showStats, "stats", false,
		"print conversion statistics to stderr")

	rootCmd.PersistentFlags().String("log-level", "warn", "verbosity of logging output")
	rootCmd.PersistentFlags().Bool("log-as-json", false, "change logging format to JSON")
}

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Failed to execute command", slog.Any("error", err))
		os.Exit(1)
	}
}

// setup configures logging from the persistent flags.
func setup(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("get log-level flag: %w", err)
	}

	logAsJSON, err := cmd.Flags().GetBool("log-as-json")
	if err != nil {
		return fmt.Errorf("get log-as-json flag: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var handler slog.Handler
	if logAsJSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

// run loads the image, flattens and scales it, converts it, and writes
// the markup to the selected sink.
func run(_ *cobra.Command, args []string) error {
	img, err := imageutil.LoadImage(args[0])
	if err != nil {
		return err
	}
	slog.Debug("decoded image",
		"path", args[0], "width", img.Width(), "height", img.Height())

	matte, err := imageutil.ParseHexColor(matteHex)
	if err != nil {
		return err
	}
	flat := imageutil.Flatten(img, matte)
	if targetWidth > 0 {
		flat = imageutil.ResizeToWidth(flat, targetWidth, imageutil.InterpolationArea)
		slog.Debug("scaled image", "width", flat.Width(), "height", flat.Height())
	}

	opts := []img2css.Option{
		img2css.WithContainer(container),
		img2css.WithThreshold(threshold),
		img2css.WithAlphabet(alphabet),
	}
	if countRuns {
		opts = append(opts, img2css.WithRunCounting())
	}

	doc, err := img2css.NewConverter(opts...).Convert(img2css.GridFromImage(flat))
	if err != nil {
		return err
	}

	if err := writeMarkup(doc, outputPath); err != nil {
		return err
	}

	if reconstructPath != "" {
		if err := imageutil.SavePNG(doc.Grid.Expand().Image(), reconstructPath); err != nil {
			return fmt.Errorf("write reconstruction: %w", err)
		}
		slog.Debug("wrote reconstruction", "path", reconstructPath)
	}

	if showStats {
		return printStats(os.Stderr, doc)
	}
	return nil
}

// writeMarkup renders the document into path, or to stdout when path
// is empty. Paths ending in .gz or .zst are compressed transparently;
// the payload is the same markup byte stream.
func writeMarkup(doc *img2css.Document, path string) error {
	if path == "" {
		return doc.WriteHTML(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	var sink io.WriteCloser = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		sink = &compressedSink{WriteCloser: gzip.NewWriter(f), file: f}
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			os.Remove(path)
			return fmt.Errorf("create zstd writer: %w", err)
		}
		sink = &compressedSink{WriteCloser: zw, file: f}
	}

	if err := doc.WriteHTML(sink); err != nil {
		sink.Close()
		os.Remove(path)
		return err
	}
	return sink.Close()
}

// compressedSink layers a compressing writer over the destination file
// and closes both in order.
type compressedSink struct {
	io.WriteCloser
	file *os.File
}

func (s *compressedSink) Close() error {
	if err := s.WriteCloser.Close(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
