package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/render"
	"sprite-gen/internal/sprite"
)

const usage = "Usage: spritegen [-mask file.json|file.png] [-seed N] [-count N] [-out sheet.png] [options]"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	mask    string
	seed    uint64
	count   int
	cols    int
	scale   int
	out     string
	verbose bool

	opts sprite.Options
}

// parseFlags reads the command line. Flags that are given explicitly
// override the template's options; the rest keep the template's values.
func parseFlags(args []string, stderr io.Writer) (*config, *masks.Mask, error) {
	fs := flag.NewFlagSet("spritegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	var c config
	def := sprite.DefaultOptions()
	fs.StringVar(&c.mask, "mask", "", "template file, .json or .png (default: built-in ship)")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed (0 = time based)")
	fs.IntVar(&c.count, "count", 1, "number of sprites, seeds seed..seed+count-1")
	fs.IntVar(&c.cols, "cols", 8, "sprites per row in the sheet")
	fs.IntVar(&c.scale, "scale", 4, "integer upscale factor for -out")
	fs.StringVar(&c.out, "out", "", "write a PNG sheet (default: ANSI preview to stdout)")
	fs.BoolVar(&c.verbose, "v", false, "log generator diagnostics")
	mirrorX := fs.Bool("mirror-x", false, "mirror horizontally")
	mirrorY := fs.Bool("mirror-y", false, "mirror vertically")
	colored := fs.Bool("colored", def.Colored, "use the color gradient")
	edge := fs.Float64("edge", def.EdgeBrightness, "outline brightness 0-1")
	variations := fs.Float64("variations", def.ColorVariations, "hue change probability 0-1")
	noise := fs.Float64("noise", def.BrightnessNoise, "brightness noise 0-1")
	saturation := fs.Float64("saturation", def.Saturation, "maximum saturation 0-1")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if c.count < 1 {
		return nil, nil, fmt.Errorf("invalid count %d (minimum 1)", c.count)
	}

	m, err := loadTemplate(c.mask)
	if err != nil {
		return nil, nil, err
	}

	c.opts = m.Options(def)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mirror-x":
			c.opts.MirrorX = *mirrorX
		case "mirror-y":
			c.opts.MirrorY = *mirrorY
		case "colored":
			c.opts.Colored = *colored
		case "edge":
			c.opts.EdgeBrightness = *edge
		case "variations":
			c.opts.ColorVariations = *variations
		case "noise":
			c.opts.BrightnessNoise = *noise
		case "saturation":
			c.opts.Saturation = *saturation
		case "seed":
			c.opts.Seed = c.seed
		}
	})
	if c.opts.Seed == 0 {
		c.opts.Seed = uint64(time.Now().UnixNano())
	}
	return &c, m, nil
}

func loadTemplate(path string) (*masks.Mask, error) {
	switch {
	case path == "":
		return masks.DefaultMask(), nil
	case strings.EqualFold(filepath.Ext(path), ".png"):
		grid, err := render.LoadMaskPNG(path)
		if err != nil {
			return nil, err
		}
		return masks.NewMask(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), grid)
	default:
		return masks.LoadMask(path)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	c, m, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if c.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		sprite.SetLogger(slog.Default())
	}

	fmt.Fprintf(stderr, "Generating %d sprite(s) from %q (%dx%d, seed %d)...\n",
		c.count, m.Name, m.Width, m.Height, c.opts.Seed)

	sprites, err := sprite.GenerateBatch(context.Background(), m.Cells(), m.Width, c.opts, c.count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if c.out == "" {
		for i, s := range sprites {
			if i > 0 {
				io.WriteString(stdout, "\n")
			}
			io.WriteString(stdout, render.HalfBlocks(s, true, render.Background))
		}
		return nil
	}

	sheetOpts := render.DefaultSheetOptions()
	sheetOpts.Cols = c.cols
	sheetOpts.Scale = c.scale
	img := render.Sheet(sprites, sheetOpts)
	if err := render.SavePNG(c.out, img); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Wrote %s (%dx%d, %d sprites of %dx%d)\n",
		c.out, img.Bounds().Dx(), img.Bounds().Dy(), len(sprites), sprites[0].Width, sprites[0].Height)
	return nil
}
