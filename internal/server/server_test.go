package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.logger == nil {
		t.Fatal("New() did not initialize logger")
	}
	if s.maxRequestBytes != DefaultMaxRequestBytes {
		t.Errorf("maxRequestBytes: got %d, want %d", s.maxRequestBytes, DefaultMaxRequestBytes)
	}
}

func TestNew_Options(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	s := New(WithLogger(logger), WithMaxRequestBytes(4096), WithCacheSize(3))

	if s.logger != logger {
		t.Error("WithLogger was not applied")
	}
	if s.maxRequestBytes != 4096 {
		t.Errorf("maxRequestBytes: got %d, want 4096", s.maxRequestBytes)
	}

	// Non-positive limits keep the default.
	if s := New(WithMaxRequestBytes(0)); s.maxRequestBytes != DefaultMaxRequestBytes {
		t.Errorf("WithMaxRequestBytes(0): got %d", s.maxRequestBytes)
	}
}

func quietServer() *Server {
	return New(WithLogger(log.NewWithOptions(&bytes.Buffer{}, log.Options{})))
}

func TestServe(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n")
	var out bytes.Buffer

	if err := quietServer().Serve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []MCPResponse
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}

	// The notification and the blank line get no response.
	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	if responses[0].ID != float64(1) || responses[0].Error != nil {
		t.Errorf("initialize: got %+v", responses[0])
	}
	if responses[1].Error == nil || responses[1].Error.Code != -32700 {
		t.Errorf("parse error: got %+v", responses[1])
	}
	if responses[2].ID != float64(2) || responses[2].Error != nil {
		t.Errorf("ping: got %+v", responses[2])
	}
}

func TestServe_RequestTooLong(t *testing.T) {
	s := New(WithLogger(log.NewWithOptions(&bytes.Buffer{}, log.Options{})), WithMaxRequestBytes(16))
	in := `{"jsonrpc":"2.0","id":1,"method":"ping"}`
	if err := s.Serve(strings.NewReader(in), &bytes.Buffer{}); err == nil {
		t.Error("Serve should fail on a request longer than the limit")
	}
}

func TestMCPRequest_IDTypes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want interface{}
	}{
		{"string id", `{"jsonrpc":"2.0","id":"test-1","method":"ping"}`, "test-1"},
		{"number id", `{"jsonrpc":"2.0","id":42,"method":"ping"}`, float64(42)},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"ping"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.line), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			// The response echoes the request ID unchanged.
			if resp := quietServer().handleRequest(&req); resp.ID != tt.want {
				t.Errorf("ID: got %v (%T), want %v (%T)", resp.ID, resp.ID, tt.want, tt.want)
			}
		})
	}
}

func TestHandleRequest(t *testing.T) {
	tests := []struct {
		method   string
		wantNil  bool
		wantCode int
	}{
		{method: "initialize"},
		{method: "notifications/initialized", wantNil: true},
		{method: "tools/list"},
		{method: "ping"},
		{method: "tools/call", wantCode: codeInvalidParams},
		{method: "nonexistent/method", wantCode: codeMethodNotFound},
	}

	s := quietServer()
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: tt.method, Params: json.RawMessage(`[]`)})
			if tt.wantNil {
				if resp != nil {
					t.Errorf("got response %+v, want none", resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.JSONRPC != "2.0" || resp.ID != 7 {
				t.Errorf("envelope: got %q / %v", resp.JSONRPC, resp.ID)
			}
			switch {
			case tt.wantCode == 0 && resp.Error != nil:
				t.Errorf("unexpected error: %+v", resp.Error)
			case tt.wantCode != 0 && (resp.Error == nil || resp.Error.Code != tt.wantCode):
				t.Errorf("error: got %+v, want code %d", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleInitialize(t *testing.T) {
	resp := quietServer().handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got struct {
		ID     string `json:"id"`
		Result struct {
			ProtocolVersion string                     `json:"protocolVersion"`
			Capabilities    map[string]json.RawMessage `json:"capabilities"`
			ServerInfo      struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", got.ID)
	}
	if got.Result.ProtocolVersion != protocolVersion {
		t.Errorf("protocolVersion: got %q", got.Result.ProtocolVersion)
	}
	if _, ok := got.Result.Capabilities["tools"]; !ok {
		t.Error("capabilities should advertise tools")
	}
	if got.Result.ServerInfo.Name != "image-core" || got.Result.ServerInfo.Version != Version {
		t.Errorf("serverInfo: got %+v", got.Result.ServerInfo)
	}
}

func TestErrorResponse_OmitsEmptyData(t *testing.T) {
	s := quietServer()

	data, err := json.Marshal(s.errorResponse(1, codeMethodNotFound, "Method not found: x", ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("empty data should be omitted: %s", data)
	}

	data, err = json.Marshal(s.errorResponse(1, codeToolFailed, "Tool execution failed", "no such file"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"data":"no such file"`) {
		t.Errorf("data missing: %s", data)
	}
}
