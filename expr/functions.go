package expr

import "github.com/emirpasic/gods/sets/treeset"

// knownFunctions is the closed set of function names a function application
// may carry.
var knownFunctions = treeset.NewWithStringComparator(
	"sin", "cos", "tan", "sec", "csc", "cot",
	"arcsin", "arccos", "arctan", "arcsec", "arccsc", "arccot",
	"log", "ln",
)

// IsKnownFunction is a predicate: is name one of the well-known functions?
func IsKnownFunction(name string) bool {
	return knownFunctions.Contains(name)
}

// KnownFunctions returns the names of all well-known functions, sorted.
func KnownFunctions() []string {
	values := knownFunctions.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.(string)
	}
	return names
}
