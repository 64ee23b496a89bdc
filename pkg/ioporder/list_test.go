package ioporder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allVersions() []Version {
	return []Version{Legacy, V30, V30JPG, V50, V50JPG}
}

func TestBuiltinBracketAndSpacing(t *testing.T) {
	t.Parallel()
	for _, v := range allVersions() {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			l, err := Builtin(v)
			require.NoError(t, err)
			require.NotZero(t, l.Len())

			assert.Equal(t, "rawprepare", l.At(0).Operation)
			assert.Equal(t, "gamma", l.At(l.Len()-1).Operation)

			for i := 0; i < l.Len(); i++ {
				assert.Equal(t, int32(100*(i+1)), l.At(i).Order)
			}
		})
	}
}

func TestBuiltinUnknownVersion(t *testing.T) {
	t.Parallel()

	_, err := Builtin(Custom)
	require.ErrorIs(t, err, ErrUnknownVersion)

	_, err = Builtin(Version(42))
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "custom", Custom.String())
	assert.Equal(t, "legacy", Legacy.String())
	assert.Equal(t, "v3.0 RAW", V30.String())
	assert.Equal(t, "v3.0 JPEG", V30JPG.String())
	assert.Equal(t, "v5.0 RAW", V50.String())
	assert.Equal(t, "v5.0 JPEG", V50JPG.String())
	assert.Equal(t, "???", Version(99).String())
}

func TestKindDetection(t *testing.T) {
	t.Parallel()
	for _, v := range allVersions() {
		l, err := Builtin(v)
		require.NoError(t, err)
		assert.Equal(t, v, l.Kind(), "kind of %s", v)
	}
}

func TestKindIgnoresMultiInstances(t *testing.T) {
	t.Parallel()

	l, err := Builtin(V50)
	require.NoError(t, err)

	// Duplicate exposure as a second instance right after the first.
	entries := l.Entries()
	for i, e := range entries {
		if e.Operation == "exposure" {
			dup := e
			dup.Instance = 1
			entries = append(entries[:i+1], append([]Entry{dup}, entries[i+1:]...)...)
			break
		}
	}
	multi := NewList(entries)

	assert.Equal(t, V50, multi.Kind())
}

func TestKindCustom(t *testing.T) {
	t.Parallel()

	l := NewList([]Entry{
		{Operation: "rawprepare"},
		{Operation: "exposure"},
		{Operation: "gamma"},
	})
	assert.Equal(t, Custom, l.Kind())

	// A strict prefix of a built-in table is not that table.
	v50, err := Builtin(V50)
	require.NoError(t, err)
	prefix := NewList(v50.Entries()[:10])
	assert.Equal(t, Custom, prefix.Kind())
}

func TestLookupSentinels(t *testing.T) {
	t.Parallel()

	l, err := Builtin(V50)
	require.NoError(t, err)

	assert.Equal(t, OrderNotFound, l.OrderOf("no_such_module", 0))
	assert.Equal(t, OrderNone, l.LastOrderOf("no_such_module"))

	_, ok := l.Lookup("exposure", 5)
	assert.False(t, ok)

	e, ok := l.Lookup("exposure", AnyInstance)
	require.True(t, ok)
	assert.Equal(t, "exposure", e.Operation)
	assert.Equal(t, int32(0), e.Instance)
}

func TestLastOrderOfMultiInstance(t *testing.T) {
	t.Parallel()

	l := NewList([]Entry{
		{Operation: "rawprepare"},
		{Operation: "exposure", Instance: 0},
		{Operation: "tonecurve"},
		{Operation: "exposure", Instance: 1},
		{Operation: "gamma"},
	})

	first := l.OrderOf("exposure", AnyInstance)
	last := l.LastOrderOf("exposure")
	assert.Equal(t, int32(200), first)
	assert.Equal(t, int32(400), last)
}

func TestIsBefore(t *testing.T) {
	t.Parallel()

	l, err := Builtin(V50)
	require.NoError(t, err)

	assert.True(t, l.IsBefore("colorout", "colorin", 0))
	assert.False(t, l.IsBefore("colorin", "colorout", 0))

	// Missing operation sorts as never-before.
	assert.False(t, l.IsBefore("colorout", "no_such_module", 0))
	// Missing base sorts as always-after.
	assert.True(t, l.IsBefore("no_such_module", "colorin", 0))
}

func TestSortStable(t *testing.T) {
	t.Parallel()

	l := &List{entries: []Entry{
		{Operation: "c", Order: 300},
		{Operation: "a1", Instance: 0, Order: 100},
		{Operation: "a2", Instance: 1, Order: 100},
		{Operation: "b", Order: 200},
	}}
	l.Sort()

	require.Equal(t, 4, l.Len())
	assert.Equal(t, "a1", l.At(0).Operation)
	assert.Equal(t, "a2", l.At(1).Operation)
	assert.Equal(t, "b", l.At(2).Operation)
	assert.Equal(t, "c", l.At(3).Operation)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	l, err := Builtin(V30)
	require.NoError(t, err)

	c := l.Clone()
	require.Equal(t, l.Len(), c.Len())

	c.entries[0].Operation = "mutated"
	assert.Equal(t, "rawprepare", l.At(0).Operation)
}

func TestDefaultVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, V50, DefaultRaw)
	assert.Equal(t, V50JPG, DefaultJPG)
}
