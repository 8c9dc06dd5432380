package main

import (
	"os"

	"github.com/yujijaao116/unity-mcp-hy3d/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
