// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

// bootCounter is the allocator key of the boot index shared by all
// interfaces.
const bootCounter = "boot"

// busAllocator hands out boot indices and per interface bus numbers. Every
// counter starts at 0. It lives for a single composition only.
type busAllocator struct {
	next map[string]int
}

func newBusAllocator() *busAllocator {
	return &busAllocator{next: map[string]int{}}
}

// peek returns the next free index for the given key without allocating it.
func (a *busAllocator) peek(key string) int {
	return a.next[key]
}

// take allocates and returns the next free index for the given key.
func (a *busAllocator) take(key string) int {
	idx := a.next[key]
	a.next[key] = idx + 1

	return idx
}

// bootIndex allocates the next boot index.
func (a *busAllocator) bootIndex() int {
	return a.take(bootCounter)
}
