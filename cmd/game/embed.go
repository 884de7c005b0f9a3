package main

import "embed"

// configFS holds the stock controller config and arena
//
//go:embed configs
var configFS embed.FS
