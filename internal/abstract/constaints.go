// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Rand is the source of the coin flipped when a node with two children is
// deleted. *math/rand.Rand satisfies it.
type Rand interface {

	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64
}

// NodeView represents an abstraction of a node exposed to traversal
// callbacks.
type NodeView[K, V any] interface {

	// HasKey returns whether the node holds a key. Only the root of an empty
	// tree has no key.
	HasKey() bool

	// Key returns the node's key. It is the zero value if HasKey is false.
	Key() K

	// Values returns the bucket of values stored under the key, in insertion
	// order. The slice must not be modified.
	Values() []V
}
