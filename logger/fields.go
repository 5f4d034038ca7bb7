package logger

import (
	"fmt"
	"strconv"
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

type fieldType int

const (
	fieldTypeBool fieldType = iota
	fieldTypeString
	fieldTypeInt
	fieldTypeUint
	fieldTypeHex8
	fieldTypeHex16
	fieldTypeFloat
	fieldTypeError
	fieldTypeStringer
)

type zfield struct {
	typ fieldType
	key string

	// Only one of these is populated, depending on typ.
	str     string
	integer uint64
	float   float64
	err     error
	iface   any
	boolean bool
}

func (f *zfield) value() string {
	switch f.typ {
	case fieldTypeBool:
		return strconv.FormatBool(f.boolean)
	case fieldTypeString:
		return f.str
	case fieldTypeInt:
		return strconv.FormatInt(int64(f.integer), 10)
	case fieldTypeUint:
		return strconv.FormatUint(f.integer, 10)
	case fieldTypeHex8:
		return fmt.Sprintf("%02x", uint(f.integer))
	case fieldTypeHex16:
		return fmt.Sprintf("%04x", uint(f.integer))
	case fieldTypeFloat:
		return strconv.FormatFloat(f.float, 'g', -1, 64)
	case fieldTypeError:
		if f.err == nil {
			return "<nil>"
		}
		return f.err.Error()
	case fieldTypeStringer:
		return f.iface.(fmt.Stringer).String()
	}
	return ""
}

// EntryZ is a structured log entry built from a fixed field buffer.
// A nil *EntryZ is valid and ignores every call, which is how disabled
// modules skip field formatting entirely.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfbuf [8]zfield
	zfidx int
}

var entryZPool = sync.Pool{
	New: func() any { return &EntryZ{} },
}

func newEntryZ() *EntryZ {
	z := entryZPool.Get().(*EntryZ)
	z.zfidx = 0
	return z
}

func (z *EntryZ) add(f zfield) *EntryZ {
	if z == nil {
		return nil
	}
	if z.zfidx < len(z.zfbuf) {
		z.zfbuf[z.zfidx] = f
		z.zfidx++
	}
	return z
}

func (z *EntryZ) Bool(key string, val bool) *EntryZ {
	return z.add(zfield{typ: fieldTypeBool, key: key, boolean: val})
}

func (z *EntryZ) String(key string, val string) *EntryZ {
	return z.add(zfield{typ: fieldTypeString, key: key, str: val})
}

func (z *EntryZ) Int(key string, val int) *EntryZ {
	return z.add(zfield{typ: fieldTypeInt, key: key, integer: uint64(val)})
}

func (z *EntryZ) Uint8(key string, val uint8) *EntryZ {
	return z.add(zfield{typ: fieldTypeUint, key: key, integer: uint64(val)})
}

func (z *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return z.add(zfield{typ: fieldTypeHex8, key: key, integer: uint64(val)})
}

func (z *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return z.add(zfield{typ: fieldTypeHex16, key: key, integer: uint64(val)})
}

func (z *EntryZ) Float64(key string, val float64) *EntryZ {
	return z.add(zfield{typ: fieldTypeFloat, key: key, float: val})
}

func (z *EntryZ) Error(err error) *EntryZ {
	return z.add(zfield{typ: fieldTypeError, key: "error", err: err})
}

func (z *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	return z.add(zfield{typ: fieldTypeStringer, key: key, iface: val})
}

// End emits the entry and recycles it. Must be the last call on z.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	fields := make(logrus.Fields, z.zfidx+1)
	fields["_mod"] = modNames[z.mod]
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].key] = z.zfbuf[i].value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch z.lvl {
	case DebugLevel:
		entry.Debug(z.msg)
	case InfoLevel:
		entry.Info(z.msg)
	case WarnLevel:
		entry.Warn(z.msg)
	case ErrorLevel:
		entry.Error(z.msg)
	case FatalLevel:
		entry.Fatal(z.msg)
	}

	entryZPool.Put(z)
}
