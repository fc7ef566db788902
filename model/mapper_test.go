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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/menagerie/types"
)

func TestFromRecord(t *testing.T) {
	t.Run("images fill all slots in column order", func(t *testing.T) {
		a := FromRecord(&Record{
			Keyword: "lion",
			Name:    "Lion",
			Kingdom: "Animalia",
			Image1:  "a.jpg",
			Image3:  "c.jpg",
		})
		require.Len(t, a.Images, ImageSlots)
		assert.Equal(t, []string{"a.jpg", "", "c.jpg", "", ""}, a.Images)
		assert.Equal(t, "lion", a.Key)
		assert.Equal(t, "Lion", a.Name)
		assert.Nil(t, a.Attributes)
	})

	t.Run("venomous follows the stored value", func(t *testing.T) {
		tests := []struct {
			name   string
			stored interface{}
			want   bool
		}{
			{"integer one", int64(1), true},
			{"integer zero", int64(0), false},
			{"text true", []byte("true"), true},
			{"text f", "f", false},
			{"native bool", true, true},
			{"null", nil, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var v types.Bool
				require.NoError(t, v.Scan(tt.stored))
				a := FromRecord(&Record{Keyword: "k", Name: "n", Kingdom: "k", Venomous: v})
				assert.Equal(t, tt.want, a.Venomous)
			})
		}
	})
}

func TestFromPayload(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{
		"key": "ignored",
		"name": "Cobra",
		"kingdom": "Animalia",
		"price": 12.5,
		"venomous": 1,
		"size": "medium",
		"blood_temp": "cold",
		"images": ["x.jpg"],
		"attributes": {"habitat": "desert"}
	}`), &p)
	require.NoError(t, err)

	a := FromPayload("cobra", &p)
	assert.Equal(t, "cobra", a.Key)
	assert.Equal(t, "Cobra", a.Name)
	assert.Equal(t, 12.5, a.Price)
	assert.True(t, a.Venomous)
	assert.Equal(t, "cold", a.BloodTemp)
	assert.Equal(t, "desert", a.Attributes["habitat"])

	// images and attributes are shared with the payload
	p.Images[0] = "y.jpg"
	p.Attributes["habitat"] = "jungle"
	assert.Equal(t, "y.jpg", a.Images[0])
	assert.Equal(t, "jungle", a.Attributes["habitat"])
}

func TestFromPayloadVenomousForms(t *testing.T) {
	for body, want := range map[string]bool{
		`{"venomous": true}`:    true,
		`{"venomous": "yes"}`:   true,
		`{"venomous": "0"}`:     false,
		`{"venomous": 0}`:       false,
		`{"venomous": null}`:    false,
		`{"name": "no field"}`:  false,
		`{"venomous": "false"}`: false,
	} {
		var p Payload
		require.NoError(t, json.Unmarshal([]byte(body), &p), body)
		assert.Equal(t, want, FromPayload("k", &p).Venomous, body)
	}
}

func TestFromRecordSet(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := FromRecordSet(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("keeps row order", func(t *testing.T) {
		out := FromRecordSet([]Record{
			{Keyword: "zebra"},
			{Keyword: "ant"},
			{Keyword: "moose"},
		})
		require.Len(t, out, 3)
		assert.Equal(t, "zebra", out[0].Key)
		assert.Equal(t, "ant", out[1].Key)
		assert.Equal(t, "moose", out[2].Key)
	})
}

func TestToRecord(t *testing.T) {
	r := ToRecord(&Animal{
		Key:      "eagle",
		Name:     "Eagle",
		Kingdom:  "Animalia",
		Venomous: false,
		Images:   []string{"1", "2", "3", "4", "5", "6"},
	})
	assert.Equal(t, "eagle", r.Keyword)
	assert.Equal(t, "1", r.Image1)
	assert.Equal(t, "5", r.Image5)
	assert.False(t, bool(r.Venomous))

	r = ToRecord(&Animal{Key: "owl", Images: []string{"only.jpg"}})
	assert.Equal(t, "only.jpg", r.Image1)
	assert.Empty(t, r.Image2)
	assert.Empty(t, r.Image5)
}

func TestColumns(t *testing.T) {
	assert.Len(t, Columns, 13)
	assert.Equal(t, "keyword", Columns[0])
	assert.Equal(t, "image5", Columns[12])
}
