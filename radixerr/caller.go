// Copyright (c) 2024 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package radixerr

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

type FuncCallerInfo struct {
	funcname string
	filetag  string
}

func (fci FuncCallerInfo) String() string {
	if fci.funcname == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", fci.funcname, fci.filetag)
}

// GetFuncCallerInfo of the caller's caller. skips adds frames (at most one arg).
func GetFuncCallerInfo(skips ...int) FuncCallerInfo {
	if len(skips) > 1 {
		panic("GetFuncCallerInfo: too many skip arguments")
	}
	skip := 2
	if len(skips) > 0 {
		skip += skips[0]
	}
	pc, tfile, tline, ok := runtime.Caller(skip)
	details := runtime.FuncForPC(pc)
	if !ok || details == nil {
		return FuncCallerInfo{}
	}
	return FuncCallerInfo{
		funcname: filepath.Base(details.Name()),
		filetag:  fmt.Sprintf("%s:%d", Cleanmodulepath(tfile), tline),
	}
}

var mainmodulecmdprefix string
var mainpwd string

func init() {
	if buildinfo, ok := debug.ReadBuildInfo(); ok {
		mainmodulecmdprefix = buildinfo.Main.Path
	}
	if dir, err := os.Getwd(); err == nil {
		mainpwd = dir
	}
}

// Cleanmodulepath trims the main module and working directory from p.
func Cleanmodulepath(p string) string {
	p1 := p
	if mainmodulecmdprefix != "" {
		p = strings.TrimPrefix(p, mainmodulecmdprefix)
	}
	if mainpwd != "" && mainpwd != "/" {
		p = strings.TrimPrefix(p, mainpwd)
	}
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return p1
	}
	return p
}
