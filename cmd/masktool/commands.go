package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/ringspin/internal/engine/texture"
	"github.com/Faultbox/ringspin/internal/spinner"
)

// maskFlags holds the flags shared by every command.
type maskFlags struct {
	size float64
	opts texture.MaskOptions
}

func (f *maskFlags) register(cmd *cobra.Command) {
	f.opts = texture.DefaultMaskOptions()
	flags := cmd.PersistentFlags()
	flags.Float64Var(&f.size, "size", texture.DefaultFontSize, "font size in pixels")
	flags.IntVar(&f.opts.Width, "width", f.opts.Width, "mask width")
	flags.IntVar(&f.opts.Height, "height", f.opts.Height, "mask height")
	flags.Float64Var(&f.opts.Baseline, "baseline", f.opts.Baseline, "text baseline")
}

// options returns mask options with the font context applied.
func (f *maskFlags) options() texture.MaskOptions {
	opts := f.opts
	opts.Context = texture.BoldContext(f.size)
	return opts
}

func rootCmd() *cobra.Command {
	var mf maskFlags

	root := &cobra.Command{
		Use:   "masktool",
		Short: "Ring label mask utility.",
		Long: `Renders the alpha masks cut into spinner rings.

Each ring is one argument; fragments are separated by '|'.
Without arguments the built-in rings are used.`,
		SilenceUsage: true,
	}
	mf.register(root)

	root.AddCommand(renderCmd(&mf))
	root.AddCommand(infoCmd(&mf))
	return root
}

func ringsFromArgs(args []string) []spinner.Ring {
	if len(args) == 0 {
		return spinner.DefaultRings()
	}
	return spinner.ParseRings(args)
}

func renderCmd(mf *maskFlags) *cobra.Command {
	var (
		outDir string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:     "render [flags] [ring...]",
		Short:   "Write each ring mask as PNG",
		Example: `  masktool render -o ./masks --scale 0.25 "LOADING|..." "PLEASE WAIT"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return errors.New("--scale must be positive")
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			opts := mf.options()
			for i, ring := range ringsFromArgs(args) {
				mask, err := texture.RenderMask(ring.Text(), opts)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ring %d: %v\n", i, err)
				}

				path := filepath.Join(outDir, fmt.Sprintf("ring_%d.png", i))
				if err := writePNG(path, scaleMask(mask, scale)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %q\n", path, ring.Text())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().Float64Var(&scale, "scale", 1, "output scale factor")
	return cmd
}

func infoCmd(mf *maskFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info [flags] [ring...]",
		Short: "Print mask coverage and ink extents",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mf.options()
			out := cmd.OutOrStdout()
			printInfoHeader(out, opts, mf.size)

			for i, ring := range ringsFromArgs(args) {
				mask, err := texture.RenderMask(ring.Text(), opts)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ring %d: %v\n", i, err)
				}
				printInfoRow(out, i, ring, mask)
			}
			return nil
		},
	}
}

func printInfoHeader(w io.Writer, opts texture.MaskOptions, size float64) {
	fmt.Fprintf(w, "Mask: %dx%d, baseline %.0f, font %.0fpx\n\n", opts.Width, opts.Height, opts.Baseline, size)
	fmt.Fprintf(w, "  %-4s %-9s %-22s %s\n", "ring", "coverage", "ink", "text")
}

func printInfoRow(w io.Writer, i int, ring spinner.Ring, mask *image.Alpha) {
	ink := texture.InkBounds(mask)
	fmt.Fprintf(w, "  %-4d %8.2f%% %-22s %q\n", i, texture.Coverage(mask)*100, ink.String(), ring.Text())
}

// scaleMask resamples mask by factor; 1 returns it unchanged.
func scaleMask(mask *image.Alpha, factor float64) image.Image {
	if factor == 1 {
		return mask
	}
	b := mask.Bounds()
	w := max(1, int(float64(b.Dx())*factor))
	h := max(1, int(float64(b.Dy())*factor))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), mask, b, xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
