package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for arbitrary values, generated lazily the first time a value
// is seen. Pointers to trapezoids and query nodes are hard to tell apart in a
// log, but "BraveOtter" and "QuietFalcon" are not. Names are never forgotten,
// so only use this for debug output.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	// Names are handed out in order of demand, so the same name means nothing
	// between runs. Make that obvious.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
