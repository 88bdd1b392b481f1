package simplearg

import (
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Marshaler is implemented by destination types that parse themselves from
// a single token.
type Marshaler interface {
	Marshal(in string) error
}

// Bytes is a byte quantity given in human readable form, like 100GB or
// 64KiB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ Marshaler = (*Bytes)(nil)

func (me *Bytes) Marshal(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*me = Bytes(n)
	return nil
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

// Types with their own parse function, keyed by the type Get stores into.
var typeMarshalFuncs = map[reflect.Type]func(settee reflect.Value, arg string) error{}

// Registers f, a func(string) T or func(string) (T, error), as the parser
// for T.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	setType := v.Type().Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, arg string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		if len(out) > 1 {
			if err, _ := out[1].Interface().(error); err != nil {
				return err
			}
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(url.Parse)
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(time.ParseDuration)
	addMarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, errors.New("bad IP address")
		}
		return ip, nil
	})
}
