// Package props holds helpers for the loosely typed property data that
// PulseAudio attaches to its objects: filtering objects by field values and
// populating structs from property maps.
package props

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

const FilterSeparator = `;`

// A Subject is an object that can be filtered. Fields are keyed by their
// libpulse names (name, index, owner_module, mute, ...) and by the keys of
// the object's property list (application.name, device.class, ...).
type Subject interface {
	Fields() map[string]interface{}
}

type Op string

const (
	Equal        Op = `=`
	NotEqual     Op = `!=`
	Contains     Op = `~`
	Less         Op = `<`
	LessEqual    Op = `<=`
	Greater      Op = `>`
	GreaterEqual Op = `>=`
)

// two-character operators first, so "<=" is not read as "<"
var operators = []Op{NotEqual, LessEqual, GreaterEqual, Equal, Contains, Less, Greater}

func (self Op) numeric() bool {
	switch self {
	case Less, LessEqual, Greater, GreaterEqual:
		return true
	default:
		return false
	}
}

// An Expr tests one field of a Subject.
type Expr struct {
	Field string
	Op    Op
	Value string
	num   float64
}

func (self Expr) String() string {
	return self.Field + string(self.Op) + self.Value
}

// ParseExpr reads an expression of the form FIELD OP VALUE, e.g.
// "name=alsa_output.pci", "mute!=true", "application.name~firefox" or
// "index>=3".
func ParseExpr(expr string) (Expr, error) {
	at := strings.IndexAny(expr, `=!~<>`)

	if at <= 0 {
		return Expr{}, fmt.Errorf("filter %q: expected FIELD OP VALUE", expr)
	}

	out := Expr{
		Field: strings.TrimSpace(expr[:at]),
	}

	rest := expr[at:]

	for _, op := range operators {
		if strings.HasPrefix(rest, string(op)) {
			out.Op = op
			out.Value = strings.TrimSpace(rest[len(op):])
			break
		}
	}

	if out.Op == `` {
		return Expr{}, fmt.Errorf("filter %q: unknown operator", expr)
	}

	if out.Op.numeric() {
		if n, err := stringutil.ConvertToFloat(out.Value); err == nil {
			out.num = n
		} else {
			return Expr{}, fmt.Errorf("filter %q: %s needs a number", expr, out.Op)
		}
	}

	return out, nil
}

// Match tests the expression against a single field value. A missing field
// never matches, not even with "!=".
func (self Expr) Match(fields map[string]interface{}) bool {
	v, ok := fields[self.Field]

	if !ok || v == nil {
		return false
	}

	value := typeutil.V(v).String()

	switch self.Op {
	case Equal:
		return value == self.Value
	case NotEqual:
		return value != self.Value
	case Contains:
		return strings.Contains(value, self.Value)
	}

	n, err := stringutil.ConvertToFloat(value)

	if err != nil {
		return false
	}

	switch self.Op {
	case Less:
		return n < self.num
	case LessEqual:
		return n <= self.num
	case Greater:
		return n > self.num
	default:
		return n >= self.num
	}
}

// A Filter is a set of expressions that must all match.
type Filter []Expr

// Parse builds a Filter from strings, a slice of strings or anything
// sliceutil can stringify. A single string may hold several expressions
// separated by FilterSeparator.
func Parse(filters interface{}) (Filter, error) {
	var out Filter

	for _, flt := range sliceutil.Stringify(filters) {
		for _, part := range strings.Split(flt, FilterSeparator) {
			if strings.TrimSpace(part) == `` {
				continue
			}

			if expr, err := ParseExpr(part); err == nil {
				out = append(out, expr)
			} else {
				return nil, err
			}
		}
	}

	return out, nil
}

func (self Filter) String() string {
	parts := make([]string, len(self))

	for i, expr := range self {
		parts[i] = expr.String()
	}

	return strings.Join(parts, FilterSeparator)
}

func (self Filter) IsMatch(subject Subject) bool {
	if len(self) == 0 {
		return true
	}

	fields := subject.Fields()

	for _, expr := range self {
		if !expr.Match(fields) {
			return false
		}
	}

	return true
}

// Select projects the named fields of subject into a nested map, splitting
// dotted property keys. With no names every field is returned.
func Select(subject Subject, names ...string) map[string]interface{} {
	fields := subject.Fields()
	out := make(map[string]interface{})

	if len(names) == 0 {
		names = maputil.StringKeys(fields)
		sort.Strings(names)
	}

	for _, name := range names {
		if v, ok := fields[name]; ok {
			maputil.DeepSet(out, strings.Split(name, `.`), v)
		}
	}

	return out
}
