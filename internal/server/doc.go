// Package server exposes the image-core views and value maps as MCP (Model
// Context Protocol) tools.
//
// Requests arrive as JSON-RPC 2.0 objects, one per line; each response is
// written as a single line. The methods understood are initialize,
// notifications/initialized, tools/list, tools/call and ping. Run binds the
// loop to stdin and stdout, Serve to any reader and writer.
//
// Tools, grouped as in tools/list:
//
//	image_load               metadata, colorant type and spatial traits
//	image_dimensions         width and height
//	image_crop               strided rectangular region, optionally resized
//	image_crop_quadrant      named region (top-left ... center)
//	image_sample_raw         raw and normalized channels of one pixel
//	image_sample_raw_multi   the same for several labeled pixels
//	image_channel_stats      per-channel min, max and mean
//	image_split_channel      one channel as grayscale
//	image_combine_channels   RGB assembled from channel sources
//	image_permute_channels   reordered channels, optionally transposed
//	image_scale_minmax       contrast-stretched luminance
//	image_colorsigned        luminance through a diverging colormap
//
// Loaded images are kept in an imageio.ImageCache keyed by path, bounded
// by WithCacheSize.
//
// A malformed line yields code -32700 and an unknown method -32601. Bad
// tools/call params, including tool arguments that do not decode or that
// contradict each other, yield -32602. Any other tool failure yields -32000
// with the Go error text as data.
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    logger.Fatal("server stopped", "error", err)
//	}
package server
