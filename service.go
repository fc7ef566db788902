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

package menagerie

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tomoncle/menagerie/database"
	"github.com/tomoncle/menagerie/model"
	"github.com/tomoncle/menagerie/repository"
	"github.com/tomoncle/menagerie/types"

	"github.com/uptrace/bun"
)

// Service is the public surface of the animal catalog.
type Service interface {
	// Get returns the animal stored under key.
	Get(ctx context.Context, key string) (*model.Animal, error)

	// ByKingdom returns every animal of a kingdom.
	ByKingdom(ctx context.Context, kingdom string) ([]*model.Animal, error)

	// Search returns animals matching any of the terms.
	Search(ctx context.Context, terms []string) ([]*model.Animal, error)

	// All returns every animal.
	All(ctx context.Context) ([]*model.Animal, error)

	// ByKeys returns the animals stored under any of the keys.
	ByKeys(ctx context.Context, keys []string) ([]*model.Animal, error)

	// Insert stores the payload under key.
	Insert(ctx context.Context, key string, payload *model.Payload) error

	// Register stores the payload under a freshly generated key and returns it.
	Register(ctx context.Context, payload *model.Payload) (string, error)

	// Page returns one page of the catalog.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[model.Animal], error)

	// Repository exposes the underlying repository.
	Repository() repository.AnimalRepository
}

// Option configures a Service.
type Option func(*serviceImpl)

// WithLogger replaces the database package logger for this service.
func WithLogger(logger database.Logger) Option {
	return func(s *serviceImpl) { s.logger = logger }
}

// WithKeyGenerator replaces the uuid key generator used by Register.
func WithKeyGenerator(gen func() string) Option {
	return func(s *serviceImpl) { s.newKey = gen }
}

type serviceImpl struct {
	repo   repository.AnimalRepository
	logger database.Logger
	newKey func() string
}

// NewService returns a Service running on db. The handle stays owned by the caller.
func NewService(db bun.IDB, opts ...Option) Service {
	s := &serviceImpl{
		repo:   repository.NewAnimalRepository(db),
		logger: database.GetLogger(),
		newKey: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *serviceImpl) Repository() repository.AnimalRepository { return s.repo }

func (s *serviceImpl) Get(ctx context.Context, key string) (*model.Animal, error) {
	start := time.Now()
	animal, err := s.repo.ReadByKey(ctx, key)
	s.observe("read_by_key", start, err, "key", key)
	return animal, err
}

func (s *serviceImpl) ByKingdom(ctx context.Context, kingdom string) ([]*model.Animal, error) {
	start := time.Now()
	animals, err := s.repo.ReadByKingdom(ctx, kingdom)
	s.observe("read_by_kingdom", start, err, "kingdom", kingdom, "rows", len(animals))
	return animals, err
}

func (s *serviceImpl) Search(ctx context.Context, terms []string) ([]*model.Animal, error) {
	start := time.Now()
	animals, err := s.repo.ReadBySearchTerms(ctx, terms)
	s.observe("read_by_search_terms", start, err, "terms", len(terms), "rows", len(animals))
	return animals, err
}

func (s *serviceImpl) All(ctx context.Context) ([]*model.Animal, error) {
	start := time.Now()
	animals, err := s.repo.ReadAll(ctx)
	s.observe("read_all", start, err, "rows", len(animals))
	return animals, err
}

func (s *serviceImpl) ByKeys(ctx context.Context, keys []string) ([]*model.Animal, error) {
	start := time.Now()
	animals, err := s.repo.ReadByKeys(ctx, keys)
	s.observe("read_by_keys", start, err, "keys", len(keys), "rows", len(animals))
	return animals, err
}

func (s *serviceImpl) Insert(ctx context.Context, key string, payload *model.Payload) error {
	start := time.Now()
	err := s.repo.InsertFromPayload(ctx, key, payload)
	s.observe("insert_from_payload", start, err, "key", key)
	return err
}

func (s *serviceImpl) Register(ctx context.Context, payload *model.Payload) (string, error) {
	key := s.newKey()
	if err := s.Insert(ctx, key, payload); err != nil {
		return "", err
	}
	return key, nil
}

func (s *serviceImpl) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[model.Animal], error) {
	start := time.Now()
	pagination, err := s.repo.Page(ctx, page)
	s.observe("page", start, err)
	return pagination, err
}

// observe logs the outcome of one call. Store failures carry their SQL
// error category; input errors are logged as they are.
func (s *serviceImpl) observe(op string, start time.Time, err error, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	fields = append(fields, "op", op, "duration", time.Since(start))
	if err == nil {
		s.logger.Debug("catalog call completed", fields...)
		return
	}
	if isInputError(err) {
		s.logger.Warn("catalog call rejected", append(fields, "error", err)...)
		return
	}
	if is, category := database.IsSqlError(err); is {
		fields = append(fields, "sql_error", category.String())
	}
	s.logger.Error("catalog call failed", append(fields, "error", err)...)
}

func isInputError(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrEmptyTerms) ||
		errors.Is(err, repository.ErrEmptyKeys) ||
		errors.Is(err, repository.ErrNilPayload)
}
