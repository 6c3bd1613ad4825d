// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "fmt"

// PaneTarget names a cell in a named pane, used by Teleporter and Sender
// to address a (possibly cross-pane) destination, and by
// UpdateContext.SendOutbound/World.Step to route a tick-deferred signal
// there (spec.md §4.2/§4.6).
type PaneTarget struct {
	Pane string `json:"pane"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// String renders the target as "pane(x, y)", e.g. "main(2, 2)".
func (t PaneTarget) String() string {
	return fmt.Sprintf("%s(%d, %d)", t.Pane, t.X, t.Y)
}
