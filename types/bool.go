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

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Bool is a boolean that accepts the looser representations drivers and
// clients hand back: native bools, 0/1 integers, and textual forms such as
// "t", "true", "yes" or "1". Anything unrecognised is false.
type Bool bool

// ParseBool normalizes v into a Bool.
func ParseBool(v interface{}) Bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return Bool(b)
	case Bool:
		return b
	case int:
		return b != 0
	case int8:
		return b != 0
	case int16:
		return b != 0
	case int32:
		return b != 0
	case int64:
		return b != 0
	case uint:
		return b != 0
	case uint8:
		return b != 0
	case uint16:
		return b != 0
	case uint32:
		return b != 0
	case uint64:
		return b != 0
	case float32:
		return b != 0
	case float64:
		return b != 0
	case []byte:
		return parseBoolString(string(b))
	case string:
		return parseBoolString(b)
	default:
		return parseBoolString(fmt.Sprint(v))
	}
}

func parseBoolString(s string) Bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "t", "true", "y", "yes", "on":
		return true
	case "", "f", "false", "n", "no", "off":
		return false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0
	}
	return false
}

// Value implements driver.Valuer for Bool.
func (b Bool) Value() (driver.Value, error) {
	return bool(b), nil
}

// Scan implements sql.Scanner for Bool.
func (b *Bool) Scan(value interface{}) error {
	*b = ParseBool(value)
	return nil
}

// UnmarshalJSON accepts JSON booleans, numbers and strings.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = ParseBool(raw)
	return nil
}

// MarshalJSON always emits a JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
