package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-core/internal/imageio"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Arguments that do not decode, or that contradict each other, return code
// -32602; any other tool failure returns code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	s.logger.Debug("tool call", "tool", params.Name)
	out, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		var perr *paramsError
		if errors.As(err, &perr) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return result(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": mustMarshalJSON(out)},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the matching imageio operation
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)

	// Channel Operations
	case "image_sample_raw":
		return s.handleImageSampleRaw(args)
	case "image_sample_raw_multi":
		return s.handleImageSampleRawMulti(args)
	case "image_channel_stats":
		return s.handleImageChannelStats(args)
	case "image_split_channel":
		return s.handleImageSplitChannel(args)
	case "image_combine_channels":
		return s.handleImageCombineChannels(args)
	case "image_permute_channels":
		return s.handleImagePermuteChannels(args)

	// Value Mapping
	case "image_scale_minmax":
		return s.handleImageScaleMinMax(args)
	case "image_colorsigned":
		return s.handleImageColorSigned(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// paramsError marks a tool failure caused by the arguments themselves.
type paramsError struct{ err error }

func (e *paramsError) Error() string { return "invalid arguments: " + e.err.Error() }

func (e *paramsError) Unwrap() error { return e.err }

func invalidParams(err error) error { return &paramsError{err: err} }

// decodeArgs unmarshals tool arguments into v.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return invalidParams(err)
	}
	return nil
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: "2.0", ID: id, Error: e}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imageio.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imageio.GetDimensions(s.cache, a.Path)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Step  int     `json:"step"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Step == 0 {
		a.Step = 1
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Step, a.Scale)
}

type imageCropQuadrantArgs struct {
	Path   string  `json:"path"`
	Region string  `json:"region"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.CropQuadrant(img, a.Region, a.Scale)
}

// === Channel Operation Handlers ===

type imageSampleRawArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleRaw(args json.RawMessage) (interface{}, error) {
	var a imageSampleRawArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.SampleImage(img, a.X, a.Y)
}

type imageSampleRawMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imageio.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleRawMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleRawMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	arr, _, err := imageio.FromImage(img)
	if err != nil {
		return nil, err
	}
	return imageio.SampleRawMulti(arr, a.Points)
}

func (s *Server) handleImageChannelStats(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	arr, _, err := imageio.FromImage(img)
	if err != nil {
		return nil, err
	}
	return imageio.ChannelStats(arr)
}

type imageSplitChannelArgs struct {
	Path    string `json:"path"`
	Channel string `json:"channel"`
}

func (s *Server) handleImageSplitChannel(args json.RawMessage) (interface{}, error) {
	var a imageSplitChannelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.SplitChannel(img, a.Channel)
}

type imageCombineChannelsArgs struct {
	Path string `json:"path"`
	R    string `json:"r"`
	G    string `json:"g"`
	B    string `json:"b"`
}

func (s *Server) handleImageCombineChannels(args json.RawMessage) (interface{}, error) {
	var a imageCombineChannelsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.R == "" {
		a.R = "r"
	}
	if a.G == "" {
		a.G = "g"
	}
	if a.B == "" {
		a.B = "b"
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.CombineChannels(img, a.R, a.G, a.B)
}

type imagePermuteChannelsArgs struct {
	Path      string `json:"path"`
	Order     string `json:"order"`
	Transpose bool   `json:"transpose"`
}

func (s *Server) handleImagePermuteChannels(args json.RawMessage) (interface{}, error) {
	var a imagePermuteChannelsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.PermuteChannels(img, a.Order, a.Transpose)
}

// === Value Mapping Handlers ===

type imageScaleMinMaxArgs struct {
	Path string   `json:"path"`
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
}

func (s *Server) handleImageScaleMinMax(args json.RawMessage) (interface{}, error) {
	var a imageScaleMinMaxArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if (a.Min == nil) != (a.Max == nil) {
		return nil, invalidParams(imageio.ErrPartialBounds)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.ScaleMinMaxImage(img, a.Min, a.Max)
}

type imageColorSignedArgs struct {
	Path          string   `json:"path"`
	Min           *float64 `json:"min"`
	Center        *float64 `json:"center"`
	Max           *float64 `json:"max"`
	NegativeColor string   `json:"negative_color"`
	CenterColor   string   `json:"center_color"`
	PositiveColor string   `json:"positive_color"`
}

func (s *Server) handleImageColorSigned(args json.RawMessage) (interface{}, error) {
	var a imageColorSignedArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	lo, center, hi := 0.0, 128.0, 255.0
	if a.Min != nil {
		lo = *a.Min
	}
	if a.Center != nil {
		center = *a.Center
	}
	if a.Max != nil {
		hi = *a.Max
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imageio.ColorSignedImage(img, lo, center, hi, imageio.SignedColors{
		Negative: a.NegativeColor,
		Center:   a.CenterColor,
		Positive: a.PositiveColor,
	})
}
