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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
)

var (
	hookTagColor   = alwaysColor(color.FgCyan)
	hookErrorColor = alwaysColor(color.BgRed, color.FgWhite)
	hookOtherColor = alwaysColor(color.FgRed)

	operationColors = map[string]*color.Color{
		"SELECT": alwaysColor(color.FgGreen),
		"INSERT": alwaysColor(color.FgBlue),
		"UPDATE": alwaysColor(color.FgYellow),
		"DELETE": alwaysColor(color.FgMagenta),
	}
)

// alwaysColor ignores color.NoColor so that piped query logs keep their colors.
func alwaysColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// QueryHook prints executed statements colored by operation. Without
// verbose only failed statements are printed; sql.ErrNoRows and
// sql.ErrTxDone are not failures.
type QueryHook struct {
	verbose bool
	writer  io.Writer
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(w io.Writer, verbose bool) *QueryHook {
	return &QueryHook{verbose: verbose, writer: w}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	failed := event.Err != nil &&
		!errors.Is(event.Err, sql.ErrNoRows) &&
		!errors.Is(event.Err, sql.ErrTxDone)
	if !failed && !h.verbose {
		return
	}

	now := time.Now()
	line := fmt.Sprintf("%s %s %12s  %s",
		now.Format("2006-01-02 15:04:05.000"),
		hookTagColor.Sprint("[BUN]"),
		now.Sub(event.StartTime).Round(time.Microsecond),
		operationColor(event.Operation()).Sprint(event.Query),
	)
	if failed {
		line += "\t" + hookErrorColor.Sprintf(" %s: %s ", reflect.TypeOf(event.Err), event.Err)
	}
	_, _ = fmt.Fprintln(h.writer, line)
}

func operationColor(op string) *color.Color {
	if c, ok := operationColors[op]; ok {
		return c
	}
	return hookOtherColor
}

// SlowQueryHook warns through logger when a successful statement runs
// longer than slowTime.
type SlowQueryHook struct {
	slowTime time.Duration
	logger   Logger
}

var _ bun.QueryHook = (*SlowQueryHook)(nil)

func NewSlowQueryHook(slowTime time.Duration, logger Logger) *SlowQueryHook {
	return &SlowQueryHook{slowTime: slowTime, logger: logger}
}

func (h *SlowQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *SlowQueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	if event.Err != nil || h.logger == nil {
		return
	}
	if elapsed := time.Since(event.StartTime); elapsed > h.slowTime {
		h.logger.Warn("Database slow query detected",
			"operation", event.Operation(),
			"duration", elapsed,
			"slow_threshold", h.slowTime,
			"query", event.Query,
		)
	}
}
