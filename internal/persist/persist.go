// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package persist saves and loads a World as JSON (spec.md §6). It is an
// external-collaborator concern, not part of the core engine, so it
// lives under internal rather than the root package.
package persist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kelindar/stackline"
)

// Save encodes world as JSON to w, buffering the write the way the
// teacher's store.go buffers its binary WriteTo.
func Save(w io.Writer, world *stackline.World) error {
	buf := bufio.NewWriter(w)
	if err := json.NewEncoder(buf).Encode(world); err != nil {
		return fmt.Errorf("stackline: encode world: %w", err)
	}
	return buf.Flush()
}

// Load decodes a World previously written by Save.
func Load(r io.Reader) (*stackline.World, error) {
	world := stackline.NewWorld()
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(world); err != nil {
		return nil, fmt.Errorf("stackline: decode world: %w", err)
	}
	return world, nil
}

// SaveFile writes world to path, creating or truncating it.
func SaveFile(path string, world *stackline.World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stackline: create %s: %w", path, err)
	}
	defer f.Close()
	return Save(f, world)
}

// LoadFile reads a World from path.
func LoadFile(path string) (*stackline.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stackline: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
