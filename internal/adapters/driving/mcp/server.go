package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keyscan/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// DefaultHost keeps the HTTP transport off external interfaces unless a
// host is given explicitly.
const DefaultHost = "localhost"

// instructions is sent to clients during initialisation.
const instructions = `keyscan reports which keywords appear in a local document.

Call find_keywords with the absolute path of a .txt, .docx or .pdf file.
Matching is case-insensitive substring matching on the extracted text, so
"java" also matches inside "javascript". Omit keywords to use the configured
list, which the keyscan://keywords resource returns. The result carries a
document_id that also tags the server's verbose log lines for that scan.`

const shutdownTimeout = 5 * time.Second

// Server exposes the scan service as MCP tools and resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates an MCP server over the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "keyscan", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// ListenAddr joins host and port into an address for RunHTTP.
// An empty host means DefaultHost.
func ListenAddr(host string, port int) string {
	if host == "" {
		host = DefaultHost
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Run serves MCP over stdio until ctx is cancelled or the client
// disconnects. Stdout carries the protocol, so nothing else may write to it.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.serveHTTP(ctx, ln)
}

func (s *Server) serveHTTP(ctx context.Context, ln net.Listener) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	}()

	logger.Info("MCP server listening on http://%s", ln.Addr())
	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-stopped
		logger.Info("MCP server stopped")
		return nil
	}
	return err
}
