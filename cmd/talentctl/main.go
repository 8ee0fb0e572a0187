// Package main は talentctl CLI のエントリポイントです。
package main

import (
	"fmt"
	"os"

	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
