// ABOUTME: MCP server setup for the ReHealth store.
// ABOUTME: Serves tools and resources for the active user profile over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rehealth/internal/models"
	"rehealth/internal/storage"
)

// Server wraps the MCP server with storage access for one user profile.
type Server struct {
	mcpServer *mcp.Server
	db        *storage.DB
	user      *models.User
}

// NewServer creates an MCP server bound to the given store and user.
func NewServer(db *storage.DB, user *models.User) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "rehealth",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		db:        db,
		user:      user,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
