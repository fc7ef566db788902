/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("animal not found")

	// ErrEmptyTerms is returned when a search has no usable term.
	ErrEmptyTerms = errors.New("search requires at least one non-blank term")

	// ErrEmptyKeys is returned when a batch lookup is given no keys.
	ErrEmptyKeys = errors.New("batch lookup requires at least one key")

	// ErrNilPayload is returned when an insert is given no payload.
	ErrNilPayload = errors.New("payload cannot be nil")
)

// NotFoundError reports a key with no matching row.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
