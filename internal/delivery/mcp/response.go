package mcp

import (
	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/FreePeak/couchbase-mcp-server/internal/domain"
)

// TextContent represents a text content item in a response
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is a standardized response format for MCP tools
type Response struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError"`
}

// NewResponse creates a new empty Response
func NewResponse() *Response {
	return &Response{
		Content: make([]TextContent, 0),
	}
}

// WithText adds a text content item to the response
func (r *Response) WithText(text string) *Response {
	r.Content = append(r.Content, TextContent{
		Type: "text",
		Text: text,
	})
	return r
}

// AsError marks the response as a failure the caller can read
func (r *Response) AsError() *Response {
	r.IsError = true
	return r
}

// FromString creates a response from a string
func FromString(text string) *Response {
	return NewResponse().WithText(text)
}

// FromErrorText creates an error-flagged response carrying a message
func FromErrorText(text string) *Response {
	return NewResponse().WithText(text).AsError()
}

// FromQueryResult wraps a query outcome in a single text block
func FromQueryResult(result domain.QueryResult) *Response {
	resp := FromString(result.Text())
	if result.IsError() {
		resp.AsError()
	}
	return resp
}

// ToCallToolResult converts the response to the protocol result type
func (r *Response) ToCallToolResult() *mcpgo.CallToolResult {
	content := make([]mcpgo.Content, 0, len(r.Content))
	for _, c := range r.Content {
		content = append(content, mcpgo.TextContent{
			Type: c.Type,
			Text: c.Text,
		})
	}
	return &mcpgo.CallToolResult{
		Content: content,
		IsError: r.IsError,
	}
}
