// Copyright (c) 2025 Orafly Authors. All rights reserved.

package main

import (
	"github.com/joho/godotenv"

	"github.com/orafly/orafly/internal/cli"
)

func main() {
	// Load .env file if it exists (silently ignore errors)
	_ = godotenv.Load()

	cli.Execute()
}
