package wrangler

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/tanant/knobwrangler/knob"
)

// mangleName picks the lowest free numeric suffix for target against
// the taken set. Only names of the exact shape <target>_<digits> count
// as occupied, so "hello_1_1" does not block "hello_1". Gaps are filled
// before the sequence is extended: the result is deterministic for a
// given (target, taken) pair and never collides with a taken name.
func mangleName(target string, taken map[string]struct{}) string {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(target) + "_([0-9]+)$")

	var used []int

	for name := range taken {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		used = append(used, idx)
	}

	sort.Ints(used)

	// suffixes count up from 1, so wanted and used walk in step until
	// the first gap
	wanted := len(used) + 1
	for i, u := range used {
		if i+1 != u {
			wanted = i + 1
			break
		}
	}

	return fmt.Sprintf("%s_%d", target, wanted)
}

// MangleKnobName reports the name k would need to sit on n without a
// name collision, following the host convention of suffixing _<index>
// counted up from 1. A knob already attached to n keeps its name, as
// does a knob whose name is not yet in use. When rename is true the
// knob is renamed in place to the returned name.
func MangleKnobName(n Node, k knob.Knob, rename bool) string {
	for _, attached := range n.AllKnobs() {
		if attached == k {
			return k.Name()
		}
	}

	names := n.Names()
	if _, inUse := names[k.Name()]; !inUse {
		return k.Name()
	}

	mangled := mangleName(k.Name(), names)
	if rename {
		k.SetName(mangled)
	}

	return mangled
}
