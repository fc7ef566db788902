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

	"github.com/tomoncle/menagerie/model"
	"github.com/tomoncle/menagerie/types"

	"github.com/uptrace/bun"
)

const defaultOrder = "keyword ASC"

// searchColumns are compared against every search term, in this order.
var searchColumns = []string{"description", "name", "size", "kingdom", "size", "blood_temp"}

// AnimalQuery builds the statements for each access pattern. Builders only
// construct queries; running them is left to the caller.
type AnimalQuery struct {
	db bun.IDB
}

// NewAnimalQuery returns a builder bound to db.
func NewAnimalQuery(db bun.IDB) *AnimalQuery {
	return &AnimalQuery{db: db}
}

func column(name string) bun.Ident {
	return bun.Ident(model.TableAlias + "." + name)
}

// All selects every row.
func (q *AnimalQuery) All(dest *[]model.Record) *bun.SelectQuery {
	return q.db.NewSelect().Model(dest)
}

// ByKey selects the row whose keyword equals key.
func (q *AnimalQuery) ByKey(dest *model.Record, key string) *bun.SelectQuery {
	return q.db.NewSelect().
		Model(dest).
		Where("? = ?", column("keyword"), key).
		Limit(1)
}

// ByKingdom selects the rows of one kingdom.
func (q *AnimalQuery) ByKingdom(dest *[]model.Record, kingdom string) *bun.SelectQuery {
	return q.db.NewSelect().
		Model(dest).
		Where("? = ?", column("kingdom"), kingdom)
}

// BySearchTerms selects rows matching any term. Each term becomes a
// parenthesized group of LIKE comparisons against %term%, and the groups are
// joined with OR. Blank terms are ignored; ErrEmptyTerms is returned when
// none remain.
func (q *AnimalQuery) BySearchTerms(dest *[]model.Record, terms []string) (*bun.SelectQuery, error) {
	patterns := make([]string, 0, len(terms))
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			patterns = append(patterns, "%"+term+"%")
		}
	}
	if len(patterns) == 0 {
		return nil, ErrEmptyTerms
	}

	sel := q.db.NewSelect().Model(dest)
	return sel.WhereGroup(" AND ", func(terms *bun.SelectQuery) *bun.SelectQuery {
		for _, pattern := range patterns {
			terms = terms.WhereGroup(" OR ", func(cmp *bun.SelectQuery) *bun.SelectQuery {
				for _, col := range searchColumns {
					cmp = cmp.WhereOr("? LIKE ?", column(col), pattern)
				}
				return cmp
			})
		}
		return terms
	}), nil
}

// ByKeys selects the rows whose keyword equals any of keys, one bound
// comparison per key joined with OR.
func (q *AnimalQuery) ByKeys(dest *[]model.Record, keys []string) (*bun.SelectQuery, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeys
	}
	sel := q.db.NewSelect().Model(dest)
	return sel.WhereGroup(" AND ", func(cmp *bun.SelectQuery) *bun.SelectQuery {
		for _, key := range keys {
			cmp = cmp.WhereOr("? = ?", column("keyword"), key)
		}
		return cmp
	}), nil
}

// Insert writes one row with a value for every column in model.Columns.
func (q *AnimalQuery) Insert(animal *model.Animal) *bun.InsertQuery {
	return q.db.NewInsert().
		Model(model.ToRecord(animal)).
		Column(model.Columns...)
}

// Count counts every row.
func (q *AnimalQuery) Count() *bun.SelectQuery {
	return q.db.NewSelect().Model((*model.Record)(nil))
}

// Page selects one window of rows, ordered by the request or by keyword.
func (q *AnimalQuery) Page(dest *[]model.Record, page *types.PageRequest) *bun.SelectQuery {
	orders := page.GetOrders()
	if len(orders) == 0 {
		orders = []string{defaultOrder}
	}
	return q.db.NewSelect().
		Model(dest).
		Order(orders...).
		Offset(page.GetOffset()).
		Limit(page.GetPageSize())
}
