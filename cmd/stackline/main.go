// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Command stackline is a REPL driver over the engine: every verb calls
// straight into World/Pane's public API, with no simulation logic of its
// own (spec.md §6). Grounded on stackline-cli/src/main.rs's verb set.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelindar/stackline"
	"github.com/kelindar/stackline/internal/persist"
	"github.com/kelindar/stackline/internal/surface"
)

func main() {
	path := flag.String("file", "", "path to a world JSON file to load on startup")
	flag.Parse()

	world := stackline.NewWorld()
	if *path != "" {
		loaded, err := persist.LoadFile(*path)
		if err != nil {
			log.Fatalf("stackline: %v", err)
		}
		world = loaded
	}

	repl := &repl{world: world, pane: "main", file: *path, out: os.Stdout}
	repl.run(os.Stdin)
}

type repl struct {
	world *stackline.World
	pane  string
	file  string
	out   *os.File
}

func (r *repl) run(in *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" {
			return
		}
		if err := r.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "stackline: %v\n", err)
		}
	}
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "print":
		r.print()
	case "pane":
		return r.cmdPane(args)
	case "panes":
		for name := range r.world.Panes() {
			fmt.Fprintln(r.out, name)
		}
	case "get":
		return r.cmdGet(args)
	case "set":
		return r.cmdSet(args)
	case "remove":
		return r.cmdRemove(args)
	case "copy":
		return r.cmdCopyMove(args, false)
	case "move":
		return r.cmdCopyMove(args, true)
	case "prop":
		return r.cmdProp(args)
	case "state":
		return r.cmdState(args)
	case "signal":
		return r.cmdSignal(args)
	case "push":
		return r.cmdPush(args)
	case "pop":
		return r.cmdPop(args)
	case "clear":
		return r.cmdClear(args)
	case "dir":
		return r.cmdDir(args)
	case "run":
		return r.cmdRun(args)
	case "step":
		r.world.Step()
		r.print()
	case "load":
		return r.cmdLoad(args)
	case "save":
		return r.cmdSave(args)
	case "help":
		r.help()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (r *repl) currentPane() (*stackline.Pane, error) {
	pane, ok := r.world.Pane(r.pane)
	if !ok {
		return nil, fmt.Errorf("no such pane %q", r.pane)
	}
	return pane, nil
}

func parsePos(args []string) ([2]int, error) {
	if len(args) < 2 {
		return [2]int{}, fmt.Errorf("expected two coordinates")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid y: %w", err)
	}
	return [2]int{x, y}, nil
}

func (r *repl) cmdPane(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a pane name")
	}
	name := args[0]
	if _, ok := r.world.Pane(name); !ok {
		if len(args) < 3 {
			return fmt.Errorf("pane %q does not exist; create it with `pane %s <width> <height>`", name, name)
		}
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid width: %w", err)
		}
		h, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid height: %w", err)
		}
		pane, err := stackline.NewPane(w, h)
		if err != nil {
			return err
		}
		r.world.SetPane(name, pane)
	}
	r.pane = name
	return nil
}

func (r *repl) cmdGet(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	tile, ok := pane.Get(pos)
	if !ok {
		return fmt.Errorf("no tile at %v", pos)
	}
	data, err := json.MarshalIndent(tile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, string(data))
	return nil
}

func (r *repl) cmdSet(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("expected a tile name")
	}
	tile, ok := stackline.NewTileByName(args[2])
	if !ok {
		return fmt.Errorf("unknown tile %q, known: %s", args[2], strings.Join(stackline.TileNames(), ", "))
	}
	pane.SetTile(pos, tile)
	return nil
}

func (r *repl) cmdRemove(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	pane.SetTile(pos, nil)
	return nil
}

func (r *repl) cmdCopyMove(args []string, move bool) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	if len(args) < 4 {
		return fmt.Errorf("expected four coordinates")
	}
	src, err := parsePos(args[:2])
	if err != nil {
		return err
	}
	dst, err := parsePos(args[2:4])
	if err != nil {
		return err
	}

	cell, ok := pane.Get(src)
	if !ok || cell.IsEmpty() {
		return fmt.Errorf("no tile at %v", src)
	}
	clone, err := cloneTile(cell.Get())
	if err != nil {
		return err
	}
	pane.SetTile(dst, clone)
	if move {
		pane.SetTile(src, nil)
	}
	return nil
}

// cloneTile round-trips t through AnyTile's JSON codec to produce an
// independent copy — the simplest way to duplicate any of the closed
// set of tiles without a type switch in the CLI itself.
func cloneTile(t stackline.Tile) (stackline.Tile, error) {
	data, err := json.Marshal(stackline.WrapTile(t))
	if err != nil {
		return nil, err
	}
	var clone stackline.AnyTile
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	return clone.Tile(), nil
}

func (r *repl) cmdProp(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("expected <x> <y> <prop> [value]")
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	prop := args[2]
	raw := "null"
	if len(args) > 3 {
		raw = strings.Join(args[3:], " ")
	}

	cell, ok := pane.Get(pos)
	if !ok || cell.IsEmpty() {
		return fmt.Errorf("no tile at %v", pos)
	}

	data, err := json.Marshal(stackline.WrapTile(cell.Get()))
	if err != nil {
		return err
	}
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	if len(outer) != 1 {
		return fmt.Errorf("unexpected tile encoding")
	}

	var value json.RawMessage
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	for kind, payload := range outer {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(payload, &fields); err != nil {
			return fmt.Errorf("tile %s is not an object", kind)
		}
		fields[prop] = value

		patched, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		outer[kind] = patched
	}

	patched, err := json.Marshal(outer)
	if err != nil {
		return err
	}
	var tile stackline.AnyTile
	if err := json.Unmarshal(patched, &tile); err != nil {
		return fmt.Errorf("apply %s=%s: %w", prop, raw, err)
	}
	pane.SetTile(pos, tile.Tile())
	return nil
}

func (r *repl) cmdState(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("expected a state name")
	}
	var state stackline.State
	if err := json.Unmarshal([]byte(`"`+args[2]+`"`), &state); err != nil {
		return fmt.Errorf("invalid state %q", args[2])
	}
	cell, ok := pane.Get(pos)
	if !ok {
		return fmt.Errorf("no tile at %v", pos)
	}
	cell.SetState(state)
	return nil
}

func (r *repl) cmdSignal(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	pane.SetSignal(pos, stackline.NewSignal(pos, stackline.Right))
	return nil
}

func (r *repl) cmdPush(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("expected a value")
	}
	value, err := parseValue(strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	cell, ok := pane.Get(pos)
	if !ok || cell.Signal() == nil {
		return fmt.Errorf("no signal at %v", pos)
	}
	cell.Signal().Push(value)
	return nil
}

func parseValue(raw string) (stackline.Value, error) {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return stackline.Number(n), nil
	}
	return stackline.String(strings.Trim(raw, `"`)), nil
}

func (r *repl) cmdPop(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	cell, ok := pane.Get(pos)
	if !ok || cell.Signal() == nil {
		return fmt.Errorf("no signal at %v", pos)
	}
	value, ok := cell.Signal().Pop()
	if !ok {
		return fmt.Errorf("signal at %v is empty", pos)
	}
	fmt.Fprintln(r.out, value.String())
	return nil
}

func (r *repl) cmdClear(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	cell, ok := pane.Get(pos)
	if !ok {
		return fmt.Errorf("no tile at %v", pos)
	}
	cell.TakeSignal()
	return nil
}

func (r *repl) cmdDir(args []string) error {
	pane, err := r.currentPane()
	if err != nil {
		return err
	}
	pos, err := parsePos(args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("expected a direction")
	}
	var dir stackline.Direction
	if err := json.Unmarshal([]byte(`"`+args[2]+`"`), &dir); err != nil {
		return fmt.Errorf("invalid direction %q", args[2])
	}
	cell, ok := pane.Get(pos)
	if !ok || cell.Signal() == nil {
		return fmt.Errorf("no signal at %v", pos)
	}
	moved := cell.Signal().Moved(dir)
	cell.SetSignal(&moved)
	return nil
}

func (r *repl) cmdRun(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("expected a step count")
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid step count: %w", err)
	}
	for i := 0; i < steps; i++ {
		r.world.Step()
		r.print()
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}

func (r *repl) cmdLoad(args []string) error {
	path := r.file
	if len(args) > 0 {
		path = args[0]
	}
	world, err := persist.LoadFile(path)
	if err != nil {
		return err
	}
	r.world = world
	return nil
}

func (r *repl) cmdSave(args []string) error {
	path := r.file
	if len(args) > 0 {
		path = args[0]
	}
	return persist.SaveFile(path, r.world)
}

func (r *repl) print() {
	bounds := r.world.Bounds()
	width := int(bounds.Max.X - bounds.Min.X)
	height := int(bounds.Max.Y - bounds.Min.Y)
	if width <= 0 || height <= 0 {
		return
	}

	surf := surface.New(width, height)
	r.world.Draw(-bounds.Min.X, -bounds.Min.Y, surf)
	fmt.Fprint(r.out, surf.String())
}

func (r *repl) help() {
	lines := []string{
		"print: prints the current world",
		"pane <name> [width height]: switches to (creating if needed) a pane",
		"panes: lists every pane name",
		"get <x> <y>: prints the JSON tile at (x, y) in the current pane",
		"set <x> <y> <tilename>: places a default instance of tilename",
		"remove <x> <y>: removes the tile at (x, y)",
		"copy <x1> <y1> <x2> <y2>: copies a tile",
		"move <x1> <y1> <x2> <y2>: moves a tile",
		"prop <x> <y> <prop> <json>: sets a property of the tile at (x, y)",
		"state <x> <y> <state>: sets the tile's state",
		"signal <x> <y>: adds an empty signal facing Right",
		"push <x> <y> <value>: pushes a value onto the signal's stack",
		"pop <x> <y>: pops and prints a value from the signal's stack",
		"clear <x> <y>: clears the tile's signal",
		"dir <x> <y> <direction>: sets the signal's direction",
		"run <steps>: runs and prints several steps with a short delay",
		"step: runs a single step",
		"load [file]: loads a world (defaults to the startup file)",
		"save [file]: saves the world (defaults to the startup file)",
		"exit: quits",
	}
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}
