package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	symbolgen "github.com/yeetcard/symbolgen"

	// Register all format writers.
	_ "github.com/yeetcard/symbolgen/aztec"
	_ "github.com/yeetcard/symbolgen/oned"
	_ "github.com/yeetcard/symbolgen/pdf417"
	_ "github.com/yeetcard/symbolgen/qrcode"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	fs := flag.NewFlagSet("barcodegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatName := fs.String("format", symbolgen.SymbologyQR.String(), "barcode format (see -list)")
	out := fs.String("out", "barcode.png", "output PNG file, or - for stdout")
	width := fs.Int("width", cfg.Width, "maximum output width in pixels")
	height := fs.Int("height", cfg.Height, "maximum output height in pixels")
	validate := fs.Bool("validate", false, "only check the data shape for the format")
	list := fs.Bool("list", false, "list known formats and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: barcodegen [flags] <data>\n\n")
		fmt.Fprintf(stderr, "Render card data as a barcode PNG.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		for _, s := range symbolgen.Symbologies() {
			fmt.Fprintf(stdout, "%-10s %-12s generate=%t wallet=%t\n",
				s, s.DisplayName(), s.CanGenerate(), s.IsWalletCompatible())
		}
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	data := fs.Arg(0)

	format, err := symbolgen.ParseSymbology(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *validate {
		if !symbolgen.ValidateBarcodeData(data, format) {
			fmt.Fprintf(stdout, "invalid %s data\n", format.DisplayName())
			return 1
		}
		fmt.Fprintf(stdout, "valid %s data\n", format.DisplayName())
		return 0
	}

	g := symbolgen.NewGenerator(symbolgen.WithLogger(logger), symbolgen.WithBarHeight(cfg.BarHeight))
	img, err := g.Generate(data, format, *width, *height)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := writePNG(*out, stdout, img); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Info("barcode written",
		slog.String("format", format.String()),
		slog.String("out", *out),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)
	return 0
}

func writePNG(path string, stdout io.Writer, img image.Image) error {
	if path == "-" {
		return png.Encode(stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
