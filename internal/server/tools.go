package server

import "github.com/ironsheep/image-core/internal/imageio"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type props = map[string]interface{}

// objectSchema is the input schema of a tool taking the given properties.
func objectSchema(properties props, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func pathProperty() props {
	return props{"type": "string", "description": "Absolute path to the image file"}
}

func integerProperty(description string) props {
	return props{"type": "integer", "description": description}
}

func numberProperty(description string) props {
	return props{"type": "number", "description": description}
}

func enumProperty(description string, names ...string) props {
	return props{"type": "string", "enum": names, "description": description}
}

func colorProperty(description string) props {
	return props{"type": "string", "pattern": imageio.HexColorPattern, "description": description}
}

func withDefault(p props, v interface{}) props {
	p["default"] = v
	return p
}

var (
	combineSources = []string{"r", "g", "b", "a", "gray", "zero"}
	regionNames    = []string{
		"top-left", "top-right", "bottom-left", "bottom-right",
		"top-half", "bottom-half", "left-half", "right-half", "center",
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image and return its metadata: dimensions, format, colorant type (e.g. RGBA{N0f8}), channel count, bit depth and spatial traits. Call this first.",
			InputSchema: objectSchema(props{"path": pathProperty()}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Width and height of an image only. Cheaper than image_load.",
			InputSchema: objectSchema(props{"path": pathProperty()}, "path"),
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Extract the region [x1,x2) x [y1,y2), keeping every step-th row and column, optionally rescaled. Returns a base64-encoded PNG.",
			InputSchema: objectSchema(props{
				"path":  pathProperty(),
				"x1":    integerProperty("Left column, inclusive"),
				"y1":    integerProperty("Top row, inclusive"),
				"x2":    integerProperty("Right column, exclusive"),
				"y2":    integerProperty("Bottom row, exclusive"),
				"step":  withDefault(integerProperty("Stride in both axes"), 1),
				"scale": withDefault(numberProperty("Resize factor applied after cropping, e.g. 2.0 to zoom in"), 1.0),
			}, "path", "x1", "y1", "x2", "y2"),
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of the image: a quadrant, a half, or the center.",
			InputSchema: objectSchema(props{
				"path":   pathProperty(),
				"region": enumProperty("Region to extract", regionNames...),
				"scale":  withDefault(numberProperty("Resize factor applied after cropping"), 1.0),
			}, "path", "region"),
		},

		// Channel Operations
		{
			Name:        "image_sample_raw",
			Description: "Read the pixel at (x, y) channel by channel: raw 8-bit storage value, normalized value and fixed-point rendering (e.g. 0.502N0f8).",
			InputSchema: objectSchema(props{
				"path": pathProperty(),
				"x":    integerProperty("Column, 0 at the left"),
				"y":    integerProperty("Row, 0 at the top"),
			}, "path", "x", "y"),
		},
		{
			Name:        "image_sample_raw_multi",
			Description: "Read several pixels in one call, each as with image_sample_raw. Points may carry labels that are echoed in the result.",
			InputSchema: objectSchema(props{
				"path": pathProperty(),
				"points": props{
					"type":        "array",
					"description": "Pixels to sample",
					"items": objectSchema(props{
						"x":     integerProperty("Column"),
						"y":     integerProperty("Row"),
						"label": props{"type": "string", "description": "Optional label for this point"},
					}, "x", "y"),
				},
			}, "path", "points"),
		},
		{
			Name:        "image_channel_stats",
			Description: "Minimum, maximum and mean normalized value of each channel (r, g, b, a).",
			InputSchema: objectSchema(props{"path": pathProperty()}, "path"),
		},
		{
			Name:        "image_split_channel",
			Description: "Render a single channel of the image as a grayscale PNG.",
			InputSchema: objectSchema(props{
				"path":    pathProperty(),
				"channel": enumProperty("Channel to extract", "r", "g", "b", "a"),
			}, "path", "channel"),
		},
		{
			Name:        "image_combine_channels",
			Description: "Build an RGB image whose channels come from channels of the source image, its luminance (gray) or zero.",
			InputSchema: objectSchema(props{
				"path": pathProperty(),
				"r":    enumProperty("Source of the red channel. Default r", combineSources...),
				"g":    enumProperty("Source of the green channel. Default g", combineSources...),
				"b":    enumProperty("Source of the blue channel. Default b", combineSources...),
			}, "path"),
		},
		{
			Name:        "image_permute_channels",
			Description: "Reorder the channels of the image (e.g. bgr, argb) and optionally swap the x and y axes.",
			InputSchema: objectSchema(props{
				"path": pathProperty(),
				"order": props{
					"type":        "string",
					"pattern":     "^[rgbaRGBA]{3,4}$",
					"description": "Output channels as 3 or 4 letters from r, g, b, a",
				},
				"transpose": withDefault(props{"type": "boolean", "description": "Swap the x and y axes"}, false),
			}, "path", "order"),
		},

		// Value Mapping
		{
			Name:        "image_scale_minmax",
			Description: "Contrast-stretch the luminance so raw level min (0-255) becomes black and max becomes white. Without min and max the range of the image is used.",
			InputSchema: objectSchema(props{
				"path": pathProperty(),
				"min":  numberProperty("Raw level mapped to black"),
				"max":  numberProperty("Raw level mapped to white"),
			}, "path"),
		},
		{
			Name:        "image_colorsigned",
			Description: "Render the luminance through a diverging colormap: levels below center fade toward the negative color, levels above toward the positive color.",
			InputSchema: objectSchema(props{
				"path":           pathProperty(),
				"min":            numberProperty("Raw level shown fully in the negative color. Default 0"),
				"center":         numberProperty("Raw level shown in the center color. Default 128"),
				"max":            numberProperty("Raw level shown fully in the positive color. Default 255"),
				"negative_color": colorProperty("Hex color for min. Default #00ff00"),
				"center_color":   colorProperty("Hex color for center. Default #ffffff"),
				"positive_color": colorProperty("Hex color for max. Default #ff00ff"),
			}, "path"),
		},
	}
}
