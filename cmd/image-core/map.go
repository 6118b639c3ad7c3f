package main

import (
	"fmt"

	"github.com/ironsheep/image-core/internal/imageio"
	"github.com/spf13/cobra"
)

func newMapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [file]",
		Short: "Write the luminance of an image through a value mapping",
		Long: `Write the luminance of an image through a value mapping.

Modes:
  minmax       stretch raw levels --min..--max to black..white; without
               both bounds the range of the image is used
  colorsigned  diverging colormap around --center, from --negative at
               --min to --positive at --max`,
		Example: `  image-core map scan.png -o stretched.png
  image-core map scan.png -o signed.png --mode colorsigned --center 100`,
		Args: cobra.ExactArgs(1),
		RunE: runMap,
	}
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output image file; the extension picks the format")
	flags.String("mode", "minmax", "Mapping: minmax or colorsigned")
	flags.Float64("min", 0, "Lowest raw level (0-255)")
	flags.Float64("max", 255, "Highest raw level (0-255)")
	flags.Float64("center", 128, "Center raw level for colorsigned")
	flags.String("negative", "", "Hex color below center (default #00ff00)")
	flags.String("center-color", "", "Hex color at center (default #ffffff)")
	flags.String("positive", "", "Hex color above center (default #ff00ff)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.LoggerTo(cmd.ErrOrStderr())

	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	mode, _ := flags.GetString("mode")
	lo, _ := flags.GetFloat64("min")
	hi, _ := flags.GetFloat64("max")

	img, err := imageio.NewImageCache(cfg.CacheSize).Load(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	switch mode {
	case "minmax":
		var loPtr, hiPtr *float64
		if flags.Changed("min") {
			loPtr = &lo
		}
		if flags.Changed("max") {
			hiPtr = &hi
		}
		view, from, to, err := imageio.ScaleMinMaxView(img, loPtr, hiPtr)
		if err != nil {
			return err
		}
		logger.Debug("scaled", "min", from, "max", to)
		if err := imageio.Save(view, output); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
	case "colorsigned":
		center, _ := flags.GetFloat64("center")
		colors := imageio.SignedColors{}
		colors.Negative, _ = flags.GetString("negative")
		colors.Center, _ = flags.GetString("center-color")
		colors.Positive, _ = flags.GetString("positive")
		view, err := imageio.ColorSignedView(img, lo, center, hi, colors)
		if err != nil {
			return err
		}
		if err := imageio.Save(view, output); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
	default:
		return fmt.Errorf("unknown mode %q (want minmax or colorsigned)", mode)
	}

	logger.Info("wrote", "path", output, "mode", mode)
	return nil
}
