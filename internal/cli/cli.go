// Package cli defines the unity-mcp command tree.
package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/bridge"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/config"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/paths"
)

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRoot().Run(ctx, append([]string{"unity-mcp"}, args...)); err != nil {
		fmt.Fprintf(os.Stderr, "unity-mcp: %v\n", err)
		return 1
	}
	return 0
}

func newRoot() *cli.Command {
	return &cli.Command{
		Name:    "unity-mcp",
		Usage:   "MCP bridge to a running Unity editor",
		Version: bridge.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.toml (default: " + paths.ConfigFile() + ")",
			},
			&cli.StringFlag{
				Name:  "unity-host",
				Usage: "override the Unity editor host",
			},
			&cli.IntFlag{
				Name:  "unity-port",
				Usage: "override the Unity editor port",
			},
			&cli.StringFlag{
				Name:  "transport",
				Usage: "MCP transport: stdio or sse",
				Value: "stdio",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the MCP server (default)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return bridge.Run(ctx, optionsFrom(cmd))
				},
			},
			{
				Name:  "ping",
				Usage: "check that the Unity editor answers on its socket",
				Action: func(_ context.Context, cmd *cli.Command) error {
					opts := optionsFrom(cmd)
					if err := bridge.Ping(opts); err != nil {
						return err
					}
					cfg, err := bridge.LoadConfig(opts)
					if err != nil {
						return err
					}
					fmt.Printf("unity editor at %s answered ping\n",
						net.JoinHostPort(cfg.UnityHost, strconv.Itoa(cfg.UnityPort)))
					return nil
				},
			},
			{
				Name:  "config",
				Usage: "manage the bridge configuration",
				Commands: []*cli.Command{
					{
						Name:  "init",
						Usage: "write a config file with default values",
						Action: func(_ context.Context, cmd *cli.Command) error {
							path := cmd.String("config")
							if path == "" {
								path = paths.ConfigFile()
							}
							if _, err := os.Stat(path); err == nil {
								return fmt.Errorf("config file already exists at %s", path)
							}
							if err := config.SaveTo(path, config.Default()); err != nil {
								return err
							}
							fmt.Printf("wrote default config to %s\n", path)
							return nil
						},
					},
					{
						Name:  "show",
						Usage: "print the effective configuration",
						Action: func(_ context.Context, cmd *cli.Command) error {
							cfg, err := bridge.LoadConfig(optionsFrom(cmd))
							if err != nil {
								return err
							}
							fmt.Printf("unity_host = %q\n", cfg.UnityHost)
							fmt.Printf("unity_port = %d\n", cfg.UnityPort)
							fmt.Printf("mcp_port = %d\n", cfg.MCPPort)
							fmt.Printf("connection_timeout = %q\n", cfg.ConnectionTimeout)
							fmt.Printf("buffer_size = %d\n", cfg.BufferSize)
							fmt.Printf("max_retries = %d\n", cfg.MaxRetries)
							fmt.Printf("retry_delay = %q\n", cfg.RetryDelay)
							fmt.Printf("log_level = %q\n", cfg.LogLevel)
							return nil
						},
					},
				},
			},
		},
	}
}

func optionsFrom(cmd *cli.Command) bridge.Options {
	return bridge.Options{
		ConfigPath: cmd.String("config"),
		UnityHost:  cmd.String("unity-host"),
		UnityPort:  int(cmd.Int("unity-port")),
		Transport:  cmd.String("transport"),
		Debug:      cmd.Bool("debug"),
	}
}
