// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func defaultConfig() *config {
	return &config{LogLevel: logrus.WarnLevel, Separator: ","}
}

func TestRunShow(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, discardLogger(), defaultConfig(), []string{"show", "3,1,2"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "[3 1 2] size=3\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunShowEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, discardLogger(), defaultConfig(), []string{"show", ""}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "[] size=0\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunCompare(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, discardLogger(), defaultConfig(), []string{"compare", "1,2", "1,2,3"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Join([]string{
		"[1 2] == [1 2 3]: false",
		"[1 2] != [1 2 3]: true",
		"[1 2] <  [1 2 3]: true",
		"[1 2] <= [1 2 3]: true",
		"[1 2] >  [1 2 3]: false",
		"[1 2] >= [1 2 3]: false",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEdit(t *testing.T) {
	var out bytes.Buffer
	args := []string{"edit", "1,2,3", "push:0", "erase:2", "insert:3=9", "set:1=7", "reverse"}
	if err := run(&out, discardLogger(), defaultConfig(), args); err != nil {
		t.Fatalf("run: %v", err)
	}
	// [0 1 2 3] -> erase after 2nd: [0 1 3] -> insert after 3rd: [0 1 3 9]
	// -> set 1st: [7 1 3 9] -> reverse: [9 3 1 7]
	if got, want := out.String(), "[9 3 1 7] size=4\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunEditCustomSeparator(t *testing.T) {
	var out bytes.Buffer
	cfg := &config{LogLevel: logrus.WarnLevel, Separator: ";"}
	if err := run(&out, discardLogger(), cfg, []string{"edit", "4;5", "pop", "clear", "push:6"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "[6] size=1\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"show"},
		{"compare", "1"},
		{"edit"},
		{"frobnicate"},
	} {
		err := run(io.Discard, discardLogger(), defaultConfig(), args)
		if errors.Cause(err) != errUsage {
			t.Errorf("run(%q) = %v, want usage error", args, err)
		}
	}
}

func TestRunBadList(t *testing.T) {
	err := run(io.Discard, discardLogger(), defaultConfig(), []string{"compare", "1,2", "1,x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "right: element 1:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEditLogsEachOp(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	if err := run(io.Discard, log, defaultConfig(), []string{"edit", "1", "push:2", "pop"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	first := entries[0]
	if first.Data["op"] != "push" || first.Data["arg"] != "2" || first.Data["size"] != 2 || first.Data["cmd"] != "edit" {
		t.Fatalf("unexpected fields %v", first.Data)
	}
	if entries[1].Data["size"] != 1 {
		t.Fatalf("unexpected fields %v", entries[1].Data)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envSeparator, ";")
	cfg, err := loadConfigFromEnvironment()
	if err != nil {
		t.Fatalf("loadConfigFromEnvironment: %v", err)
	}
	if cfg.LogLevel != logrus.DebugLevel || cfg.Separator != ";" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadConfigFromEnvironmentInvalid(t *testing.T) {
	t.Setenv(envLogLevel, "loud")
	if _, err := loadConfigFromEnvironment(); err == nil {
		t.Fatal("expected error for invalid level")
	}

	t.Setenv(envLogLevel, "info")
	t.Setenv(envSeparator, "")
	if _, err := loadConfigFromEnvironment(); err == nil {
		t.Fatal("expected error for empty separator")
	}
}
