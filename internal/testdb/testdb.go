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

package testdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/tomoncle/menagerie/database"
	"github.com/tomoncle/menagerie/model"

	"github.com/uptrace/bun"
)

var seq atomic.Int64

// Open returns a private in-memory SQLite database holding an empty animals
// table. It is closed when the test finishes.
func Open(t testing.TB) *bun.DB {
	t.Helper()

	ctx := context.Background()
	cfg := database.DefaultConnectionConfig()
	cfg.Type = database.TypeSQLite
	cfg.InMemory = true
	cfg.DBName = fmt.Sprintf("menagerie_test_%d", seq.Add(1))
	cfg.SlowQueryTime = 0

	db, err := database.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.NewCreateTable().Model((*model.Record)(nil)).Exec(ctx); err != nil {
		t.Fatalf("create animals table: %v", err)
	}
	return db
}

// Seed inserts records directly, bypassing the repository.
func Seed(t testing.TB, db bun.IDB, records ...*model.Record) {
	t.Helper()
	for _, r := range records {
		if _, err := db.NewInsert().Model(r).Exec(context.Background()); err != nil {
			t.Fatalf("seed %q: %v", r.Keyword, err)
		}
	}
}
