// Package bridge assembles the pieces into a running MCP server: config,
// logging, the single-instance lock, the editor connection, and the tool
// registry on top of a stdio or SSE transport.
package bridge

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/mark3labs/mcp-go/server"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/config"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/lockfile"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/logging"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/paths"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/tools"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/unity"
)

// Version is stamped into the MCP server handshake.
const Version = "0.2.0"

// Options are the CLI-level overrides applied on top of the config file.
type Options struct {
	ConfigPath string // empty means the default XDG location
	UnityHost  string // overrides unity_host when non-empty
	UnityPort  int    // overrides unity_port when non-zero
	Transport  string // "stdio" (default) or "sse"
	Debug      bool
}

// LoadConfig reads the config file named by opts (or the default one),
// applies the CLI overrides, and validates the result.
func LoadConfig(opts Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFrom(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.UnityHost != "" {
		cfg.UnityHost = opts.UnityHost
	}
	if opts.UnityPort != 0 {
		cfg.UnityPort = opts.UnityPort
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newServer builds the MCP server with every tool and prompt registered.
func newServer(provider *unity.Provider) *server.MCPServer {
	s := server.NewMCPServer(
		"UnityMCP",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions("Unity Editor integration via Model Context Protocol. "+
			"Tools talk to a running Unity editor; start the editor with the UnityMCP plugin before calling them."),
	)
	tools.New(provider).Register(s)
	return s
}

// Run starts the bridge and blocks until the transport exits or ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	if opts.Debug {
		logging.SetDebug(true)
	} else {
		logging.SetLevel(cfg.LogLevel)
	}
	if err := logging.Init(paths.LogFile()); err != nil {
		return err
	}
	defer logging.Close()
	log := logging.WithComponent("bridge")

	if err := paths.EnsureDir(paths.RuntimeDir()); err != nil {
		return fmt.Errorf("creating runtime directory: %w", err)
	}
	release, err := lockfile.Acquire(paths.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			log.Warn("releasing instance lock", "err", err)
		}
	}()

	provider := unity.NewProvider(func() *unity.Connection {
		return unity.NewConnection(cfg)
	})
	defer provider.Close()

	// Best effort: the editor may not be up yet, and every tool call
	// reconnects on demand.
	if _, err := provider.Get(); err != nil {
		log.Warn("could not connect to unity on startup", "err", err)
	} else {
		log.Info("connected to unity on startup",
			"addr", net.JoinHostPort(cfg.UnityHost, strconv.Itoa(cfg.UnityPort)))
	}

	s := newServer(provider)

	switch opts.Transport {
	case "", "stdio":
		log.Info("serving mcp over stdio")
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ServeStdio(s)
		}()
		select {
		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("stdio transport: %w", err)
			}
			return nil
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		}
	case "sse":
		addr := fmt.Sprintf(":%d", cfg.MCPPort)
		log.Info("serving mcp over sse", "addr", addr)
		sse := server.NewSSEServer(s)
		errCh := make(chan error, 1)
		go func() {
			errCh <- sse.Start(addr)
		}()
		select {
		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("sse transport: %w", err)
			}
			return nil
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
			defer cancel()
			return sse.Shutdown(shutdownCtx)
		}
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", opts.Transport)
	}
}

// Ping checks that a Unity editor is reachable with the given options.
func Ping(opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	conn := unity.NewConnection(cfg)
	defer conn.Disconnect() //nolint:errcheck
	return conn.Ping()
}
