package mcp

import (
	"encoding/json"
	"fmt"

	"omnilint/internal/envelope"
	"omnilint/internal/errors"
)

// handleMessage processes an incoming MCP message and returns a response, or
// nil for notifications.
func (s *Server) handleMessage(msg *Message) *Message {
	if msg.IsRequest() {
		return s.handleRequest(msg)
	}
	if msg.IsNotification() {
		s.handleNotification(msg)
		return nil
	}
	return NewErrorMessage(msg.Id, InvalidRequest, "invalid message: not a request or notification", nil)
}

func (s *Server) handleRequest(msg *Message) *Message {
	s.logger.Debug("handling request", "method", msg.Method, "id", msg.Id)

	switch msg.Method {
	case "initialize":
		return s.handleInitializeRequest(msg)
	case "tools/list":
		return s.handleListToolsRequest(msg)
	case "tools/call":
		return s.handleCallToolRequest(msg)
	default:
		return NewErrorMessage(msg.Id, MethodNotFound, fmt.Sprintf("method not found: %s", msg.Method), nil)
	}
}

func (s *Server) handleNotification(msg *Message) {
	s.logger.Debug("handling notification", "method", msg.Method)

	switch msg.Method {
	case "notifications/initialized":
		s.logger.Info("client initialized")
	default:
		s.logger.Debug("unknown notification", "method", msg.Method)
	}
}

func (s *Server) handleInitializeRequest(msg *Message) *Message {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		params = make(map[string]interface{})
	}

	result, err := s.handleInitialize(params)
	if err != nil {
		return NewErrorMessage(msg.Id, InternalError, err.Error(), nil)
	}
	return NewResultMessage(msg.Id, result)
}

func (s *Server) handleListToolsRequest(msg *Message) *Message {
	return NewResultMessage(msg.Id, map[string]interface{}{
		"tools": s.ToolDefinitions(),
	})
}

func (s *Server) handleCallToolRequest(msg *Message) *Message {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		return NewErrorMessage(msg.Id, InvalidParams, "invalid params: expected object", nil)
	}

	result, err := s.handleCallTool(params)
	if err != nil {
		return NewErrorMessage(msg.Id, InternalError, err.Error(), nil)
	}
	return NewResultMessage(msg.Id, result)
}

// handleCallTool executes a tool. Handler errors are reported inside the
// envelope so agents always receive well-formed tool content.
func (s *Server) handleCallTool(params map[string]interface{}) (interface{}, error) {
	toolName, ok := params["name"].(string)
	if !ok {
		return nil, errors.NewInvalidParameterError("name", "expected string")
	}

	toolParams, ok := params["arguments"].(map[string]interface{})
	if !ok {
		toolParams = make(map[string]interface{})
	}

	handler, exists := s.tools[toolName]
	if !exists {
		return nil, errors.NewUnknownToolError(toolName)
	}

	s.logger.Info("calling tool", "tool", toolName)

	resp, err := handler(toolParams)
	if err != nil {
		resp = envelope.New().Data(nil).Error(err).Build()
	}
	return toolContent(resp)
}

// toolContent wraps an envelope response as MCP text content.
func toolContent(resp *envelope.Response) (interface{}, error) {
	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.NewOperationError("marshal response", err)
	}

	return map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": string(jsonBytes),
			},
		},
	}, nil
}
