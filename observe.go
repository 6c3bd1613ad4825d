// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "sync"

// Observer is notified, synchronously and in World.Step's own goroutine,
// whenever a tile finishes updating. Grounded on the teacher's signal.go
// (the synchronous Observer/Notify pair), not its channel-buffered
// observer.go — this engine's ticks are deterministic and single
// threaded, so a buffered, goroutine-per-subscriber design would only
// add nondeterminism in notification ordering for no benefit.
type Observer interface {
	OnTileUpdate(pos Point, tile *FullTile)
}

// notifier fans a tile-update notification out to every subscribed
// Observer.
type notifier struct {
	mu   sync.RWMutex
	subs []Observer
}

func newNotifier() *notifier {
	return &notifier{}
}

// Notify calls every subscriber's OnTileUpdate. Safe to call on a nil
// notifier.
func (n *notifier) Notify(pos Point, tile *FullTile) {
	if n == nil {
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, sub := range n.subs {
		sub.OnTileUpdate(pos, tile)
	}
}

// Subscribe registers sub to receive every future tile-update
// notification.
func (n *notifier) Subscribe(sub Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, sub)
}

// Unsubscribe deregisters sub.
func (n *notifier) Unsubscribe(sub Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()

	clean := make([]Observer, 0, len(n.subs))
	for _, o := range n.subs {
		if o != sub {
			clean = append(clean, o)
		}
	}
	n.subs = clean
}
