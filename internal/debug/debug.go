// Copyright 2025 The varstruct Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug

// Package debug includes debugging helpers.
//
// Builds without the debug tag compile all of this away; see nodebug.go.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/timandy/routine"
)

// Enabled is true if the library is being built with the debug tag, which
// enables various debugging features.
const Enabled = true

// Log prints debugging information to stderr, prefixed with the calling
// file, line, and goroutine.
func Log(format string, args ...any) {
	pc, file, line, _ := runtime.Caller(1)

	pkg := runtime.FuncForPC(pc).Name()
	if dot := strings.LastIndexByte(pkg, '.'); dot >= 0 {
		pkg = pkg[:dot]
	}
	if slash := strings.LastIndexByte(pkg, '/'); slash >= 0 {
		pkg = pkg[slash+1:]
	}

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d] ", pkg, filepath.Base(file), line, routine.Goid())
	_, _ = fmt.Fprintf(buf, format, args...)
	_, _ = buf.Write([]byte{'\n'})

	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("varstruct: internal assertion failed: "+format, args...))
	}
}
