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
	"context"

	"github.com/tomoncle/menagerie/model"
	"github.com/tomoncle/menagerie/types"

	"github.com/uptrace/bun/schema"
)

// AnimalReader defines the lookups over the animals table.
type AnimalReader interface {
	ReadByKey(ctx context.Context, key string) (*model.Animal, error)

	ReadByKingdom(ctx context.Context, kingdom string) ([]*model.Animal, error)

	ReadBySearchTerms(ctx context.Context, terms []string) ([]*model.Animal, error)

	ReadAll(ctx context.Context) ([]*model.Animal, error)

	ReadByKeys(ctx context.Context, keys []string) ([]*model.Animal, error)
}

// AnimalWriter defines the write path.
type AnimalWriter interface {
	InsertFromPayload(ctx context.Context, key string, payload *model.Payload) error
}

// PageQueryRepository defines pagination over the whole catalog.
type PageQueryRepository interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[model.Animal], error)
}

// AnimalRepository combines reads, writes and pagination and exposes the
// query builder for callers that need to extend a statement.
type AnimalRepository interface {
	AnimalReader
	AnimalWriter
	PageQueryRepository
	Dialect() schema.Dialect
	Query() *AnimalQuery
}
