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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/menagerie/internal/testdb"
	"github.com/tomoncle/menagerie/model"
	"github.com/tomoncle/menagerie/types"
)

func TestAnimalQuery_ByKey(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	var dest model.Record
	sql := q.ByKey(&dest, "lion").String()
	assert.Contains(t, sql, `FROM "animals" AS "a"`)
	assert.Contains(t, sql, `"a"."keyword" = 'lion'`)
	assert.Contains(t, sql, "LIMIT 1")
}

func TestAnimalQuery_ByKingdom(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	var dest []model.Record
	sql := q.ByKingdom(&dest, "Animalia").String()
	assert.Contains(t, sql, `"a"."kingdom" = 'Animalia'`)
}

func TestAnimalQuery_BySearchTerms(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	t.Run("one group per term", func(t *testing.T) {
		var dest []model.Record
		sel, err := q.BySearchTerms(&dest, []string{"red", "cold"})
		require.NoError(t, err)

		sql := sel.String()
		assert.Equal(t, 6, strings.Count(sql, "'%red%'"))
		assert.Equal(t, 6, strings.Count(sql, "'%cold%'"))
		assert.Equal(t, 12, strings.Count(sql, " LIKE "))
		// five inside each group plus the one joining them
		assert.Equal(t, 11, strings.Count(sql, " OR "))
		assert.NotContains(t, sql, " AND ")
		assert.Equal(t, 2, strings.Count(sql, `"a"."size" LIKE '%red%'`))
		assert.Contains(t, sql, `"a"."blood_temp" LIKE '%cold%'`)
	})

	t.Run("values are escaped", func(t *testing.T) {
		var dest []model.Record
		sel, err := q.BySearchTerms(&dest, []string{"o'neil"})
		require.NoError(t, err)
		assert.Contains(t, sel.String(), `'%o''neil%'`)
	})

	t.Run("blank terms are dropped", func(t *testing.T) {
		var dest []model.Record
		sel, err := q.BySearchTerms(&dest, []string{" ", "fur", ""})
		require.NoError(t, err)
		sql := sel.String()
		assert.Equal(t, 6, strings.Count(sql, " LIKE "))
		assert.NotContains(t, sql, "'%%'")
	})

	t.Run("no usable term", func(t *testing.T) {
		var dest []model.Record
		for _, terms := range [][]string{nil, {}, {"", "  "}} {
			sel, err := q.BySearchTerms(&dest, terms)
			assert.ErrorIs(t, err, ErrEmptyTerms)
			assert.Nil(t, sel)
		}
	})
}

func TestAnimalQuery_ByKeys(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	var dest []model.Record
	sel, err := q.ByKeys(&dest, []string{"lion", "shark"})
	require.NoError(t, err)

	sql := sel.String()
	assert.Equal(t, 2, strings.Count(sql, `"a"."keyword" = '`))
	assert.Regexp(t, `'lion'\)* OR \(*"a"."keyword" = 'shark'`, sql)
	assert.Equal(t, 1, strings.Count(sql, " OR "))

	sel, err = q.ByKeys(&dest, []string{"x' OR '1'='1"})
	require.NoError(t, err)
	assert.Contains(t, sel.String(), `'x'' OR ''1''=''1'`)

	sel, err = q.ByKeys(&dest, nil)
	assert.ErrorIs(t, err, ErrEmptyKeys)
	assert.Nil(t, sel)
}

func TestAnimalQuery_Insert(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	sql := q.Insert(&model.Animal{Key: "owl", Name: "Owl", Kingdom: "Animalia"}).String()
	assert.Contains(t, sql, `("keyword", "name", "kingdom", "description", "price", "size", "blood_temp", "venomous", "image1", "image2", "image3", "image4", "image5")`)
	assert.Contains(t, sql, "'owl'")
	assert.Contains(t, sql, "'Owl'")
}

func TestAnimalQuery_Page(t *testing.T) {
	q := NewAnimalQuery(testdb.Open(t))

	var dest []model.Record
	sql := q.Page(&dest, types.NewPageRequest(2, 5)).String()
	assert.Regexp(t, `ORDER BY "?keyword"? ASC`, sql)
	assert.Contains(t, sql, "LIMIT 5")
	assert.Contains(t, sql, "OFFSET 5")

	sql = q.Page(&dest, types.NewPageRequest(1, 5, "price DESC")).String()
	assert.Regexp(t, `ORDER BY "?price"? DESC`, sql)
}
