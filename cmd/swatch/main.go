// Swatch - dominant colour swatches and square crops
//
// Swatch clusters the pixels of an image to find its dominant colours and
// renders them as JPEG previews.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
