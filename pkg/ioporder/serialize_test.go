package ioporder

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ops compares only what serialization preserves.
var ops = cmp.Options{
	cmp.AllowUnexported(List{}),
	cmpopts.IgnoreUnexported(Entry{}),
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range allVersions() {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			l, err := Builtin(v)
			require.NoError(t, err)

			got, err := DeserializeText(l.SerializeText())
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(l, got, ops))
		})
	}
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	l := NewList([]Entry{
		{Operation: "rawprepare", Instance: 0},
		{Operation: "exposure", Instance: 2},
		{Operation: "gamma", Instance: 0},
	})
	assert.Equal(t, "rawprepare,0,exposure,2,gamma,0", l.SerializeText())
}

func TestDeserializeTextRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":            "",
		"missing instance": "rawprepare,0,gamma",
		"bad instance":     "rawprepare,zero,gamma,0",
		"no bracket":       "exposure,0,tonecurve,0",
		"missing gamma":    "rawprepare,0,exposure,0",
		"long name":        "rawprepare,0,anoperationnamethatistoolong,0,gamma,0",
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := DeserializeText(in)
			require.ErrorIs(t, err, ErrCorruptList)
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range allVersions() {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			l, err := Builtin(v)
			require.NoError(t, err)

			got, err := DeserializeBinary(l.SerializeBinary())
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(l, got, ops))
		})
	}
}

func TestBinaryLayout(t *testing.T) {
	t.Parallel()

	l := NewList([]Entry{{Operation: "flip", Instance: 3}})
	buf := l.SerializeBinary()
	require.Len(t, buf, 4+4+4)

	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, "flip", string(buf[4:8]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(buf[8:]))
}

func TestDeserializeBinaryRejects(t *testing.T) {
	t.Parallel()

	valid := NewList([]Entry{{Operation: "flip", Instance: 3}}).SerializeBinary()

	truncated := valid[:len(valid)-2]

	negLen := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(negLen, 0xffffffff)

	hugeLen := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(hugeLen, 200)

	badInst := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badInst[8:], 5000)

	cases := map[string][]byte{
		"empty":           nil,
		"truncated":       truncated,
		"negative length": negLen,
		"length overrun":  hugeLen,
		"bad instance":    badInst,
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := DeserializeBinary(in)
			require.ErrorIs(t, err, ErrCorruptList)
		})
	}
}

func TestBinarySkipsBracketCheck(t *testing.T) {
	t.Parallel()

	partial := NewList([]Entry{
		{Operation: "exposure", Instance: 0},
		{Operation: "tonecurve", Instance: 0},
	})

	got, err := DeserializeBinary(partial.SerializeBinary())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range allVersions() {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()
			l, err := Builtin(v)
			require.NoError(t, err)

			data, err := l.SerializeJSON(v)
			require.NoError(t, err)

			got, kind, err := DeserializeJSON(data)
			require.NoError(t, err)
			assert.Equal(t, v, kind)
			assert.Empty(t, cmp.Diff(l, got, ops))
		})
	}
}

func TestDeserializeJSONRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":   "not json at all",
		"no bracket": `{"version":4,"order":[{"op":"exposure","instance":0}]}`,
		"empty name": `{"version":4,"order":[{"op":"","instance":0}]}`,
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := DeserializeJSON([]byte(in))
			require.ErrorIs(t, err, ErrCorruptList)
		})
	}
}
