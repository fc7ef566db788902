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

package model

import (
	"github.com/tomoncle/menagerie/types"
	"github.com/uptrace/bun"
)

const (
	// ImageSlots is the number of image columns an animal row carries.
	ImageSlots = 5

	TableName  = "animals"
	TableAlias = "a"
)

// Animal is a catalog entry. It is built per request and not mutated afterwards.
type Animal struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Kingdom     string           `json:"kingdom"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Size        string           `json:"size"`
	BloodTemp   string           `json:"blood_temp"`
	Venomous    bool             `json:"venomous"`
	Attributes  types.JsonObject `json:"attributes,omitempty"`
	Images      []string         `json:"images"`
}

// Image returns the image URI in slot i, or "" when the slot is empty or out of range.
func (a *Animal) Image(i int) string {
	if i < 0 || i >= len(a.Images) {
		return ""
	}
	return a.Images[i]
}

// Payload is the inbound representation used to create an animal.
type Payload struct {
	Name        string           `json:"name"`
	Kingdom     string           `json:"kingdom"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Attributes  types.JsonObject `json:"attributes"`
	Images      []string         `json:"images"`
	Size        string           `json:"size"`
	Venomous    types.Bool       `json:"venomous"`
	BloodTemp   string           `json:"blood_temp"`
}

// Record is a row of the animals table.
type Record struct {
	bun.BaseModel `bun:"table:animals,alias:a"`

	Keyword     string     `bun:"keyword,pk"`
	Name        string     `bun:"name,notnull"`
	Kingdom     string     `bun:"kingdom,notnull"`
	Description string     `bun:"description,nullzero"`
	Price       float64    `bun:"price"`
	Size        string     `bun:"size,nullzero"`
	BloodTemp   string     `bun:"blood_temp,nullzero"`
	Venomous    types.Bool `bun:"venomous,notnull"`
	Image1      string     `bun:"image1,nullzero"`
	Image2      string     `bun:"image2,nullzero"`
	Image3      string     `bun:"image3,nullzero"`
	Image4      string     `bun:"image4,nullzero"`
	Image5      string     `bun:"image5,nullzero"`
}

// Columns lists the animals table columns in insert order.
var Columns = []string{
	"keyword", "name", "kingdom", "description", "price", "size", "blood_temp", "venomous",
	"image1", "image2", "image3", "image4", "image5",
}
