package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. Geometry values
// print as walls of coordinates; giving each distinct value a petname makes
// them easy to tell apart when scanning debug output. Names are memoized by
// the value's formatted form, so equal values share a name within a run.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	key := fmt.Sprintf("%#v", obj)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
