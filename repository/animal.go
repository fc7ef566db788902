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
	"database/sql"
	"errors"

	"github.com/tomoncle/menagerie/model"
	"github.com/tomoncle/menagerie/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type animalRepositoryImpl struct {
	db    bun.IDB
	query *AnimalQuery
}

// NewAnimalRepository returns a repository that runs its statements on db,
// which may be a *bun.DB, bun.Tx or bun.Conn owned by the caller.
func NewAnimalRepository(db bun.IDB) AnimalRepository {
	return &animalRepositoryImpl{db: db, query: NewAnimalQuery(db)}
}

func (r *animalRepositoryImpl) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *animalRepositoryImpl) Query() *AnimalQuery { return r.query }

func (r *animalRepositoryImpl) ReadByKey(ctx context.Context, key string) (*model.Animal, error) {
	var record model.Record
	err := r.query.ByKey(&record, key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Key: key}
		}
		return nil, err
	}
	return model.FromRecord(&record), nil
}

func (r *animalRepositoryImpl) ReadByKingdom(ctx context.Context, kingdom string) ([]*model.Animal, error) {
	var records []model.Record
	if err := r.query.ByKingdom(&records, kingdom).Scan(ctx); err != nil {
		return nil, err
	}
	return model.FromRecordSet(records), nil
}

func (r *animalRepositoryImpl) ReadBySearchTerms(ctx context.Context, terms []string) ([]*model.Animal, error) {
	var records []model.Record
	query, err := r.query.BySearchTerms(&records, terms)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return model.FromRecordSet(records), nil
}

func (r *animalRepositoryImpl) ReadAll(ctx context.Context) ([]*model.Animal, error) {
	var records []model.Record
	if err := r.query.All(&records).Scan(ctx); err != nil {
		return nil, err
	}
	return model.FromRecordSet(records), nil
}

func (r *animalRepositoryImpl) ReadByKeys(ctx context.Context, keys []string) ([]*model.Animal, error) {
	var records []model.Record
	query, err := r.query.ByKeys(&records, keys)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return model.FromRecordSet(records), nil
}

func (r *animalRepositoryImpl) InsertFromPayload(ctx context.Context, key string, payload *model.Payload) error {
	if payload == nil {
		return ErrNilPayload
	}
	_, err := r.query.Insert(model.FromPayload(key, payload)).Exec(ctx)
	return err
}

func (r *animalRepositoryImpl) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[model.Animal], error) {
	if page == nil {
		page = types.NewPageRequest(1, types.DefaultPageSize)
	}
	pagination := types.NewDefaultPagination[model.Animal](page.GetPage(), page.GetPageSize())
	total, err := r.query.Count().Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return pagination, nil
	}

	var records []model.Record
	if err := r.query.Page(&records, page).Scan(ctx); err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = model.FromRecordSet(records)
	return pagination, nil
}
