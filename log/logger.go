// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"os"
	"time"

	"github.com/go-stack/stack"
)

// Keys used for the fixed fields of a record in the logfmt and JSON output.
const (
	timeKey  = "t"
	lvlKey   = "lvl"
	msgKey   = "msg"
	errorKey = "LOG_ERROR"
)

// Stack frames between a logging call site and logger.write.
const skipLevel = 2

// Lvl is the severity of a record. Lower values are more severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

var (
	lvlAligned = [...]string{"CRIT ", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"}
	lvlShort   = [...]string{"crit", "eror", "warn", "info", "dbug", "trce"}
	lvlLong    = [...]string{"crit", "error", "warn", "info", "debug", "trace"}
)

// AlignedString returns the level name padded to five characters, as used
// by the terminal format.
func (l Lvl) AlignedString() string {
	if l < LvlCrit || l > LvlTrace {
		panic("bad level")
	}
	return lvlAligned[l]
}

// String returns the four letter name of the level.
func (l Lvl) String() string {
	if l < LvlCrit || l > LvlTrace {
		panic("bad level")
	}
	return lvlShort[l]
}

// LvlFromString parses a level name. Both the long ("debug") and the four
// letter ("dbug") forms are accepted.
func LvlFromString(s string) (Lvl, error) {
	for l := LvlCrit; l <= LvlTrace; l++ {
		if s == lvlShort[l] || s == lvlLong[l] {
			return l, nil
		}
	}
	return LvlDebug, fmt.Errorf("unknown level: %v", s)
}

// LvlFromVerbosity maps the numeric 0-5 verbosity of command line flags
// (0 = silent, 5 = trace) onto a level. Out of range values are clamped.
func LvlFromVerbosity(v int) Lvl {
	switch {
	case v <= 0:
		return LvlCrit
	case v >= int(LvlTrace):
		return LvlTrace
	default:
		return Lvl(v)
	}
}

// Record is a single log entry handed to a Handler.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{} // alternating keys and values
	Call stack.Call
}

// Logger writes key/value records to a Handler. Loggers created with New
// carry their parent's context in front of every record.
type Logger interface {
	New(ctx ...interface{}) Logger

	GetHandler() Handler
	SetHandler(h Handler)

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	// Crit logs and terminates the process.
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, skip int) {
	l.h.Log(&Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  appendContext(l.ctx, ctx),
		Call: stack.Caller(skip),
	})
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{ctx: appendContext(l.ctx, ctx), h: new(swapHandler)}
	child.SetHandler(l.h)
	return child
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx, skipLevel) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx, skipLevel) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx, skipLevel) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx, skipLevel) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx, skipLevel) }

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

func (l *logger) GetHandler() Handler  { return l.h.Get() }
func (l *logger) SetHandler(h Handler) { l.h.Swap(h) }

// appendContext returns a fresh slice holding prefix followed by suffix.
// An odd suffix is padded with nil and flagged under errorKey, since logging
// calls have no way to report the mistake.
func appendContext(prefix, suffix []interface{}) []interface{} {
	if len(suffix)%2 != 0 {
		suffix = append(suffix, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}
	out := make([]interface{}, 0, len(prefix)+len(suffix))
	out = append(out, prefix...)
	return append(out, suffix...)
}

// Lazy defers computing a logged value until a handler that will actually
// write the record evaluates it. Fn must be a function without arguments
// returning at least one value.
type Lazy struct {
	Fn interface{}
}
