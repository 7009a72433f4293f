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
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUniqueViolated is matched by errors returned from inserting an
	// existing key into a unique tree.
	ErrUniqueViolated = errors.New("unique constraint violated")

	// ErrInvariantViolated is matched by errors returned from the structural
	// checks when the ordering or the parent pointers of a tree are broken.
	ErrInvariantViolated = errors.New("binary search tree invariant violated")
)

// UniqueViolationError is returned by Insert when the tree is unique and the
// key already exists. Key holds the rejected key.
type UniqueViolationError struct {
	Key any
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("can't insert key %v, it violates the unique constraint", e.Key)
}

// Is makes errors.Is(err, ErrUniqueViolated) hold.
func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolated
}

func invariantViolation(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInvariantViolated)
}
