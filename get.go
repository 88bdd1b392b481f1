package simplearg

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Get parses the next token into dst, which must be a pointer, and consumes
// it. Integers are base 10. Besides the builtin numeric, bool and string
// kinds, dst may point to a type registered in typeMarshalFuncs, or
// implement Marshaler or encoding.TextUnmarshaler.
//
// If the token doesn't parse, Get records an error, leaves the token in
// place and returns false. If no token remains Get returns false without
// recording anything. An unsupported dst is a programming error and panics.
func (me *Arguments) Get(dst interface{}) bool {
	tok, ok := me.peek()
	if !ok {
		return false
	}
	if kind, msg := marshal(dst, string(tok)); kind != nil {
		me.message(kind, msg)
		return false
	}
	me.pos++
	return true
}

// GetAll gets a value into each of dsts in turn. It fails without consuming
// anything if fewer tokens remain than there are dsts. Otherwise it stops at
// the first Get that fails; tokens consumed by earlier dsts stay consumed.
func (me *Arguments) GetAll(dsts ...interface{}) bool {
	if me.failed {
		return false
	}
	if len(dsts) > me.Len() {
		me.message(ErrArity, fmt.Sprintf("expects %d parameters, got only %d", len(dsts), me.Len()))
		return false
	}
	for _, dst := range dsts {
		if !me.Get(dst) {
			return false
		}
	}
	return true
}

func marshal(dst interface{}, s string) (kind error, msg string) {
	switch d := dst.(type) {
	case *string:
		*d = s
		return
	case *[]byte:
		*d = append((*d)[:0], s...)
		return
	case Marshaler:
		return otherError(dst, s, d.Marshal(s))
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic(fmt.Sprintf("can't get into %T", dst))
	}
	e := v.Elem()
	if f, ok := typeMarshalFuncs[e.Type()]; ok {
		return otherError(dst, s, f(e, s))
	}
	if tu, ok := dst.(encoding.TextUnmarshaler); ok {
		return otherError(dst, s, tu.UnmarshalText([]byte(s)))
	}
	switch e.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := e.Type().Bits()
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			lo := int64(-1) << (bits - 1)
			return intError(s, err, strconv.FormatInt(lo, 10), strconv.FormatInt(-(lo + 1), 10))
		}
		e.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := e.Type().Bits()
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return intError(s, err, "0", strconv.FormatUint(^uint64(0)>>(64-bits), 10))
		}
		e.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, e.Type().Bits())
		if err != nil {
			if isRange(err) {
				return ErrRange, fmt.Sprintf("expects number in float%d range in place of '%s'", e.Type().Bits(), s)
			}
			return ErrFormat, fmt.Sprintf("expects floating point value in place of '%s'", s)
		}
		e.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return ErrFormat, fmt.Sprintf("expects boolean in place of '%s'", s)
		}
		e.SetBool(b)
	case reflect.String:
		e.SetString(s)
	default:
		panic(fmt.Sprintf("can't get into %T", dst))
	}
	return
}

func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

func intError(s string, err error, lo, hi string) (error, string) {
	if isRange(err) {
		return ErrRange, fmt.Sprintf("expects number in range [%s..%s] in place of '%s'", lo, hi, s)
	}
	return ErrFormat, fmt.Sprintf("expects number in place of '%s'", s)
}

func otherError(dst interface{}, s string, err error) (error, string) {
	if err == nil {
		return nil, ""
	}
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return ErrFormat, fmt.Sprintf("expects %s in place of '%s': %s", t, s, err)
}
