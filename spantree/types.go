// Package spantree defines sentinel errors for randomized spanning-tree growth.
package spantree

import "errors"

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("spantree: graph is nil")

// ErrNeedRand indicates that no random source was supplied.
var ErrNeedRand = errors.New("spantree: random source is nil")

// ErrBadBias indicates a branch-length bias outside [0,1].
var ErrBadBias = errors.New("spantree: bias must be in [0,1]")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("spantree: graph is disconnected")
