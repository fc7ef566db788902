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

import "github.com/tomoncle/menagerie/types"

// FromPayload builds an Animal for key from an inbound payload. Images and
// attributes are shared with the payload, not copied. Required fields are not
// checked here.
func FromPayload(key string, p *Payload) *Animal {
	return &Animal{
		Key:         key,
		Name:        p.Name,
		Kingdom:     p.Kingdom,
		Description: p.Description,
		Price:       p.Price,
		Size:        p.Size,
		BloodTemp:   p.BloodTemp,
		Venomous:    bool(p.Venomous),
		Attributes:  p.Attributes,
		Images:      p.Images,
	}
}

// FromRecord builds an Animal from a persisted row. Images always holds
// ImageSlots entries in column order.
func FromRecord(r *Record) *Animal {
	return &Animal{
		Key:         r.Keyword,
		Name:        r.Name,
		Kingdom:     r.Kingdom,
		Description: r.Description,
		Price:       r.Price,
		Size:        r.Size,
		BloodTemp:   r.BloodTemp,
		Venomous:    bool(r.Venomous),
		Images:      []string{r.Image1, r.Image2, r.Image3, r.Image4, r.Image5},
	}
}

// FromRecordSet maps rows in order. It never returns nil.
func FromRecordSet(rows []Record) []*Animal {
	out := make([]*Animal, 0, len(rows))
	for i := range rows {
		out = append(out, FromRecord(&rows[i]))
	}
	return out
}

// ToRecord lays an Animal out as a row. Images past the last slot are dropped.
func ToRecord(a *Animal) *Record {
	return &Record{
		Keyword:     a.Key,
		Name:        a.Name,
		Kingdom:     a.Kingdom,
		Description: a.Description,
		Price:       a.Price,
		Size:        a.Size,
		BloodTemp:   a.BloodTemp,
		Venomous:    types.Bool(a.Venomous),
		Image1:      a.Image(0),
		Image2:      a.Image(1),
		Image3:      a.Image(2),
		Image4:      a.Image(3),
		Image5:      a.Image(4),
	}
}
