// Rulekit: Cursor Rules MCP Server
//
// An MCP server that exposes a project's Cursor rule files (.cursor/rules/*.mdc)
// and AGENTS.md to any MCP-capable AI coding tool, so assistants that don't read
// Cursor's rule format natively can still follow the project's conventions.
//
// Usage:
//
//	rulekit                  # Start MCP server (stdio transport)
//	rulekit check <file>     # Show which rules apply to a file
//	rulekit config init      # Write a default config file
package main

import (
	"fmt"
	"os"

	"github.com/rulekit/rulekit/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
