package mcpclient

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

const (
	// DefaultEndpoint is Notion's hosted MCP server.
	DefaultEndpoint   = "https://mcp.notion.com/mcp"
	DefaultClientName = "notion-mcp-go"
)

// Config describes how to reach a Notion MCP server. Defaults can be loaded
// via envdecode.
type Config struct {
	// Endpoint of the streamable HTTP transport. ENV: NOTION_MCP_ENDPOINT
	Endpoint string `env:"NOTION_MCP_ENDPOINT,default=https://mcp.notion.com/mcp"`
	// Token is sent as a bearer token when set. ENV: NOTION_MCP_TOKEN
	Token string `env:"NOTION_MCP_TOKEN"`
	// ClientName is reported to the server during initialization.
	// ENV: NOTION_MCP_CLIENT_NAME
	ClientName string `env:"NOTION_MCP_CLIENT_NAME,default=notion-mcp-go"`
}

// ConfigFromEnv populates a Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode mcp client config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.ClientName == "" {
		c.ClientName = DefaultClientName
	}
	return c
}
