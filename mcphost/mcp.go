package mcphost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/baseforms/augment"
	"github.com/jonwraymond/baseforms/hooks"
)

// protocolVersion is the MCP protocol revision this server reports.
const protocolVersion = "2024-11-05"

// Config configures a Server.
type Config struct {
	ServerInfo ServerInfo
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Server serves the augmentation pipeline over MCP JSON-RPC.
type Server struct {
	aug    *augment.Augmenter
	config Config
	tools  []mcp.Tool
}

// New creates a Server over aug.
func New(aug *augment.Augmenter, cfg Config) *Server {
	return &Server{
		aug:    aug,
		config: cfg,
		tools:  toolDefinitions(),
	}
}

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HandleRequest processes an MCP request and returns a response.
func (s *Server) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(ctx, req.ID, req.Params)
	case "tools/list":
		return s.handleToolsList(ctx, req.ID, req.Params)
	case "tools/call":
		return s.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    ErrCodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.config.ServerInfo.Name,
			"version": s.config.ServerInfo.Version,
		},
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func (s *Server) handleToolsList(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	mcpTools := make([]map[string]any, 0, len(s.tools))
	for _, tool := range s.tools {
		mcpTools = append(mcpTools, toMCPTool(tool))
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": mcpTools},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeInvalidParams,
				Message: err.Error(),
			},
		}
	}

	result, err := s.execute(ctx, callParams.Name, callParams.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		switch {
		case errors.Is(err, ErrToolNotFound):
			code = ErrCodeToolNotFound
		case errors.Is(err, ErrInvalidArgument):
			code = ErrCodeInvalidParams
		}
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    code,
				Message: err.Error(),
			},
		}
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// execute dispatches a tool call to the Augmenter.
func (s *Server) execute(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "lemmatize":
		text, err := stringArg(args, "text")
		if err != nil {
			return nil, err
		}
		forms, err := s.aug.BaseForms(ctx, text)
		if err != nil {
			return nil, err
		}
		return map[string]any{"baseForms": forms}, nil

	case "augment_content":
		content, err := stringArg(args, "content")
		if err != nil {
			return nil, err
		}
		docID, err := stringArg(args, "document_id")
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"content": s.aug.AugmentContent(ctx, content, docID),
		}, nil

	case "augment_query":
		q, err := stringArg(args, "q")
		if err != nil {
			return nil, err
		}
		session := s.aug.NewSearch()
		params := session.FilterQuery(ctx, hooks.QueryParams{Q: q})

		return map[string]any{
			"q":      params.Q,
			"lemmas": session.Lemmas().Members(),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidArgument, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

func toMCPTool(tool mcp.Tool) map[string]any {
	return map[string]any{
		"name":        tool.Name,
		"description": tool.Description,
		"inputSchema": tool.InputSchema,
	}
}

// toolDefinitions declares the served tools.
func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "lemmatize",
			Description: "Return the distinct base (dictionary) forms for the words in a piece of text",
			InputSchema: objectSchema(map[string]any{
				"text": map[string]any{"type": "string"},
			}, "text"),
		},
		{
			Name:        "augment_content",
			Description: "Rewrite document content for indexing, appending base forms when the document is in the target language",
			InputSchema: objectSchema(map[string]any{
				"content":     map[string]any{"type": "string"},
				"document_id": map[string]any{"type": "string"},
			}, "content", "document_id"),
		},
		{
			Name:        "augment_query",
			Description: "Rewrite a free-text search query, appending base forms when the request is in the target language",
			InputSchema: objectSchema(map[string]any{
				"q": map[string]any{"type": "string"},
			}, "q"),
		},
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
