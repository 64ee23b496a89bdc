package ioporder

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "ioporder")

const (
	// OperationMaxLen is the longest accepted operation name, in bytes.
	OperationMaxLen = 19

	// AnyInstance matches the first instance of an operation during lookup.
	AnyInstance int32 = -1

	// OrderNotFound is returned by OrderOf for missing entries. It sorts
	// after every valid order key.
	OrderNotFound int32 = math.MaxInt32

	// OrderNone is returned by LastOrderOf for missing entries. It sorts
	// before every valid order key.
	OrderNone int32 = math.MinInt32
)

// Version identifies one of the shipped pipeline orderings.
type Version int32

const (
	Custom Version = iota
	Legacy
	V30
	V30JPG
	V50
	V50JPG

	versionCount
)

// Default versions for freshly imported images.
const (
	DefaultRaw = V50
	DefaultJPG = V50JPG
)

var versionNames = [versionCount]string{
	"custom",
	"legacy",
	"v3.0 RAW",
	"v3.0 JPEG",
	"v5.0 RAW",
	"v5.0 JPEG",
}

func (v Version) String() string {
	if v < 0 || v >= versionCount {
		return "???"
	}
	return versionNames[v]
}

// Entry places one module instance in the pipeline ordering.
type Entry struct {
	// Operation is the module name, at most OperationMaxLen bytes.
	Operation string
	// Instance distinguishes multi-instances of the same operation.
	Instance int32
	// Order is the integer sort key. It is recomputed whenever a list is
	// built or loaded and is never read back from storage.
	Order int32

	// legacy keeps the fractional order column of the built-in tables for
	// database migration only. It is visibly non-monotonic in the v3.0 and
	// v5.0 tables and must never be compared at runtime.
	legacy float64
}

// List is an ordered sequence of entries. The zero value is an empty list.
type List struct {
	entries []Entry
}

// NewList builds a list from the given entries. Order keys are recomputed
// from the entry positions.
func NewList(entries []Entry) *List {
	l := &List{entries: make([]Entry, len(entries))}
	copy(l.entries, entries)
	l.resetOrders()
	return l
}

// Builtin returns a fresh list for one of the shipped versions.
func Builtin(v Version) (*List, error) {
	if v <= Custom || v >= versionCount {
		return nil, errors.Wrapf(ErrUnknownVersion, "version %d", v)
	}
	t := builtinTables[v]
	l := &List{entries: make([]Entry, len(t))}
	for i, e := range t {
		l.entries[i] = Entry{Operation: e.op, legacy: e.legacy}
	}
	l.resetOrders()
	return l, nil
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	c := &List{entries: make([]Entry, len(l.entries))}
	copy(c.entries, l.entries)
	return c
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// At returns the entry at index i.
func (l *List) At(i int) Entry { return l.entries[i] }

// Entries returns a copy of the entries in list order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// resetOrders reassigns the integer sort keys from the entry positions,
// starting at 100 and stepping by 100. The gaps leave room for later
// insertions without renumbering.
func (l *List) resetOrders() {
	order := int32(100)
	for i := range l.entries {
		l.entries[i].Order = order
		order += 100
	}
}

// Sort orders the entries by their sort key. Entries with equal keys keep
// their relative positions.
func (l *List) Sort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Order < l.entries[j].Order
	})
}

// Lookup finds the entry for an operation. An instance of AnyInstance
// matches the first instance found.
func (l *List) Lookup(op string, instance int32) (Entry, bool) {
	for _, e := range l.entries {
		if e.Operation == op && (e.Instance == instance || instance == AnyInstance) {
			return e, true
		}
	}
	return Entry{}, false
}

// OrderOf returns the sort key for an operation instance, or OrderNotFound
// when the list has no such entry.
func (l *List) OrderOf(op string, instance int32) int32 {
	e, ok := l.Lookup(op, instance)
	if !ok {
		log.WithFields(logrus.Fields{"op": op, "instance": instance}).
			Warn("cannot get iop order")
		return OrderNotFound
	}
	return e.Order
}

// LastOrderOf returns the highest sort key among all instances of an
// operation, or OrderNone when the list has no such entry.
func (l *List) LastOrderOf(op string) int32 {
	order := OrderNone
	for _, e := range l.entries {
		if e.Operation == op && e.Order > order {
			order = e.Order
		}
	}
	return order
}

// IsBefore reports whether the given operation instance runs before the
// first instance of the base operation. The sentinel values make missing
// operations compare as never-before and missing bases as always-after.
func (l *List) IsBefore(baseOp, op string, instance int32) bool {
	return l.OrderOf(op, instance) < l.OrderOf(baseOp, AnyInstance)
}

// Kind reports which shipped version the list matches, or Custom when it
// matches none. Consecutive entries with the same operation collapse to one
// before comparison, so multi-instances do not affect detection.
func (l *List) Kind() Version {
	for v := Legacy; v < versionCount; v++ {
		if l.matchesTable(builtinTables[v]) {
			return v
		}
	}
	return Custom
}

func (l *List) matchesTable(t []tableEntry) bool {
	k := 0
	for i := 0; i < len(l.entries); i++ {
		if k >= len(t) || l.entries[i].Operation != t[k].op {
			return false
		}
		for i+1 < len(l.entries) && l.entries[i+1].Operation == t[k].op {
			i++
		}
		k++
	}
	return k == len(t)
}

// sanityCheck enforces the structural bracket of a usable pipeline order.
func (l *List) sanityCheck() error {
	if len(l.entries) == 0 {
		return errors.Wrap(ErrCorruptList, "empty list")
	}
	if l.entries[0].Operation != "rawprepare" {
		return errors.Wrapf(ErrCorruptList, "first entry is %q, want rawprepare", l.entries[0].Operation)
	}
	if last := l.entries[len(l.entries)-1].Operation; last != "gamma" {
		return errors.Wrapf(ErrCorruptList, "last entry is %q, want gamma", last)
	}
	return nil
}
