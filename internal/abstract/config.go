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

import (
	"io"
	"log/slog"
)

// Config is shared by every node of a tree. It consists of the key
// comparison function, the value equality test used by targeted deletes,
// the uniqueness flag and the coin used to pick a replacement when a node
// with two children is removed. All nodes created within one tree point at
// the same Config.
type Config[K, V any] struct {
	cmp    func(K, K) int
	eq     func(V, V) bool
	unique bool
	rand   Rand
	logger *slog.Logger
}

// MakeConfig constructs a Config. The comparator and the coin are required;
// a nil logger discards everything.
func MakeConfig[K, V any](
	cmp func(K, K) int, eq func(V, V) bool, unique bool, rnd Rand, logger *slog.Logger,
) *Config[K, V] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Config[K, V]{
		cmp:    cmp,
		eq:     eq,
		unique: unique,
		rand:   rnd,
		logger: logger,
	}
}

// Logger returns the tree's logger.
func (c *Config[K, V]) Logger() *slog.Logger { return c.logger }
