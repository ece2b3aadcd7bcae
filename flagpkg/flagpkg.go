// flagpkg package provides flag values for radix tools. (BaseVar, InverseBoolVar)
package flagpkg

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/aerth/radix/radix"
)

// BaseVar defines a numeric base flag on fs (flag.CommandLine if nil).
//
// Values outside 2..36 are rejected when parsing, so "-to 37" is a usage error.
func BaseVar(fs *flag.FlagSet, p *uint32, name string, value uint32, usage string) {
	if fs == nil {
		fs = flag.CommandLine
	}
	fs.Var(newBaseValue(value, p), name, usage)
}

type baseValue uint32

func newBaseValue(val uint32, p *uint32) *baseValue {
	*p = val
	return (*baseValue)(p)
}

func (b *baseValue) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid base %q", s)
	}
	if err := radix.CheckBase(uint32(v)); err != nil {
		return err
	}
	*b = baseValue(v)
	return nil
}

func (b *baseValue) Get() any { return uint32(*b) }

func (b *baseValue) String() string {
	if b == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*b), 10)
}

// ParseBase parses a base argument the same way BaseVar does.
func ParseBase(s string) (uint32, error) {
	var v uint32
	err := newBaseValue(0, &v).Set(s)
	return v, err
}

// InverseBoolVar defines a flag that inverts a bool value.
//
// For example, "-zero-glyph" bound to EmptyZero: passing it sets EmptyZero false.
//
// Using -zero-glyph=false would set to true.
//
// Omitting flag does not change the value at all.
func InverseBoolVar(fs *flag.FlagSet, p *bool, name string, value bool, usage string) {
	if fs == nil {
		fs = flag.CommandLine
	}
	fs.Var(newInverseBoolValue(value, p), name, usage)
}

// -- inversebool  Value
// mostly from https://go.dev/src/flag/flag.go
// except: we invert the value below, in Set
type inverseboolValue bool

func newInverseBoolValue(val bool, p *bool) *inverseboolValue {
	*p = val
	return (*inverseboolValue)(p)
}

func (b *inverseboolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid bool value: %v", err)
	}
	*b = inverseboolValue(!v) // invert value
	return nil
}

func (b *inverseboolValue) Get() any { return bool(*b) }

func (b *inverseboolValue) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*b))
}

func (b *inverseboolValue) IsBoolFlag() bool { return true }
