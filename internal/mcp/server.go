// Package mcp implements the Model Context Protocol server for elxup.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// StartMCPServer starts the MCP server in stdio mode.
func StartMCPServer() error {
	s := server.NewMCPServer(
		"elxup-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools
	registerTools(s)

	// Start stdio server
	return server.ServeStdio(s)
}

func registerTools(s *server.MCPServer) {
	// elx_models - List TTS models
	s.AddTool(mcp.NewTool("elx_models",
		mcp.WithDescription("Fetch the current text-to-speech models from the ElevenLabs API"),
		mcp.WithString("api_key",
			mcp.Description("API key (optional, falls back to the stored credential)"),
		),
	), handleModels)

	// elx_voices - List voices
	s.AddTool(mcp.NewTool("elx_voices",
		mcp.WithDescription("Fetch the account's voices from the ElevenLabs API"),
		mcp.WithString("api_key",
			mcp.Description("API key (optional, falls back to the stored credential)"),
		),
	), handleVoices)

	// elx_subscription - Subscription info
	s.AddTool(mcp.NewTool("elx_subscription",
		mcp.WithDescription("Fetch the account's subscription info"),
		mcp.WithString("api_key",
			mcp.Description("API key (optional, falls back to the stored credential)"),
		),
	), handleSubscription)

	// elx_update - Run the sync pipeline
	s.AddTool(mcp.NewTool("elx_update",
		mcp.WithDescription("Sync the extension files in a directory with current API metadata"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Extension directory path"),
		),
		mcp.WithString("api_key",
			mcp.Description("API key (optional, falls back to the stored credential)"),
		),
	), handleUpdate)
}

func handleModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	result, err := listModels(ctx, getStringArg(args, "api_key"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func handleVoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	result, err := listVoices(ctx, getStringArg(args, "api_key"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func handleSubscription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	result, err := subscriptionInfo(ctx, getStringArg(args, "api_key"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func handleUpdate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	path := getStringArg(args, "path")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	result, err := runUpdate(ctx, path, getStringArg(args, "api_key"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return make(map[string]interface{})
}

func getStringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
