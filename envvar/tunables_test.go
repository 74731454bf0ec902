// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envvar_test

import (
	"os"
	"testing"

	"github.com/vanadium-labs/synchcore/envvar"
)

func TestIntFallsBackToDefault(t *testing.T) {
	tests := []struct {
		set    bool
		value  string
		def    int
		want   int
	}{
		{false, "", 7, 7},
		{true, "42", 7, 42},
		{true, "not-a-number", 7, 7},
		{true, "", 7, 7},
		{true, "-3", 7, -3},
	}
	const name = "SYNCHCORE_TEST_INT"
	for _, test := range tests {
		os.Unsetenv(name)
		if test.set {
			if err := os.Setenv(name, test.value); err != nil {
				t.Fatalf("Setenv: %v", err)
			}
		}
		if got := envvar.Int(name, test.def); got != test.want {
			t.Errorf("Int(%q=%q, %d) = %d, want %d", name, test.value, test.def, got, test.want)
		}
	}
	os.Unsetenv(name)
}

func TestStringFallsBackToDefault(t *testing.T) {
	const name = "SYNCHCORE_TEST_STRING"
	os.Unsetenv(name)
	if got, want := envvar.String(name, "fallback"), "fallback"; got != want {
		t.Errorf("String unset = %q, want %q", got, want)
	}
	os.Setenv(name, "override")
	if got, want := envvar.String(name, "fallback"), "override"; got != want {
		t.Errorf("String set = %q, want %q", got, want)
	}
	os.Unsetenv(name)
}
