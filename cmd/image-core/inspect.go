package main

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-core/internal/imageio"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print image metadata and spatial traits as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			info, err := imageio.LoadImageInfo(imageio.NewImageCache(cfg.CacheSize), args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels [file]",
		Short: "Print per-channel statistics, or the channels of one pixel",
		Example: `  image-core channels photo.png
  image-core channels photo.png --at 10,20`,
		Args: cobra.ExactArgs(1),
		RunE: runChannels,
	}
	cmd.Flags().IntSlice("at", nil, "Pixel x,y to sample instead of whole-image statistics")
	return cmd
}

func runChannels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	at, _ := cmd.Flags().GetIntSlice("at")
	if len(at) != 0 && len(at) != 2 {
		return fmt.Errorf("--at needs x,y, got %v", at)
	}

	img, err := imageio.NewImageCache(cfg.CacheSize).Load(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	arr, _, err := imageio.FromImage(img)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(at) == 2 {
		sample, err := imageio.SampleRaw(arr, at[0], at[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pixel (%d,%d) %s\n", sample.X, sample.Y, sample.Hex)
		for _, c := range sample.Channels {
			fmt.Fprintf(out, "  %s  raw %3d  %s\n", c.Name, c.Raw, c.Text)
		}
		return nil
	}

	stats, err := imageio.ChannelStats(arr)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%dx%d\n", stats.Width, stats.Height)
	for _, c := range stats.Channels {
		fmt.Fprintf(out, "  %s  min %.3f  max %.3f  mean %.3f\n", c.Name, c.Min, c.Max, c.Mean)
	}
	return nil
}
