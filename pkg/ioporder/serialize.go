package ioporder

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SerializeText renders the list as "op,instance,op,instance,..." with no
// trailing separator.
func (l *List) SerializeText() string {
	var b strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.Operation)
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(e.Instance), 10))
	}
	return b.String()
}

// DeserializeText parses the comma-separated text form, recomputes the
// integer order keys and checks the rawprepare/gamma bracket.
func DeserializeText(s string) (*List, error) {
	if s == "" {
		return nil, errors.Wrap(ErrCorruptList, "empty text")
	}

	toks := strings.Split(s, ",")
	if len(toks)%2 != 0 {
		return nil, corruptText(s, "odd token count")
	}

	l := &List{entries: make([]Entry, 0, len(toks)/2)}
	for i := 0; i < len(toks); i += 2 {
		op := toks[i]
		if op == "" || len(op) > OperationMaxLen {
			return nil, corruptText(s, "bad operation name")
		}
		inst, err := strconv.ParseInt(toks[i+1], 10, 32)
		if err != nil {
			return nil, corruptText(s, "bad instance number")
		}
		l.entries = append(l.entries, Entry{Operation: op, Instance: int32(inst)})
	}

	l.resetOrders()
	if err := l.sanityCheck(); err != nil {
		return nil, corruptText(s, err.Error())
	}
	return l, nil
}

func corruptText(s, reason string) error {
	if len(s) > 80 {
		s = s[:80]
	}
	return errors.Wrapf(ErrCorruptList, "%s in %q", reason, s)
}

const binaryInstanceMax = 1000

// SerializeBinary renders the list as repeated records of a little-endian
// int32 name length, the name bytes and a little-endian int32 instance.
func (l *List) SerializeBinary() []byte {
	size := 0
	for _, e := range l.entries {
		size += len(e.Operation) + 8
	}

	buf := make([]byte, 0, size)
	for _, e := range l.entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Operation)))
		buf = append(buf, e.Operation...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Instance))
	}
	return buf
}

// DeserializeBinary parses the binary form and recomputes the order keys.
// Unlike the text and JSON loaders it does not require the rawprepare/gamma
// bracket, because database blobs may hold partial lists during migration.
func DeserializeBinary(buf []byte) (*List, error) {
	if len(buf) == 0 {
		return nil, errors.Wrap(ErrCorruptList, "empty binary blob")
	}

	l := &List{}
	for pos := 0; pos < len(buf); {
		if len(buf)-pos < 4 {
			return nil, errors.Wrap(ErrCorruptList, "truncated name length")
		}
		nameLen := int32(binary.LittleEndian.Uint32(buf[pos:]))
		pos += 4

		if nameLen < 0 || nameLen > OperationMaxLen+1 || int(nameLen) > len(buf)-pos {
			return nil, errors.Wrapf(ErrCorruptList, "bad name length %d", nameLen)
		}
		op := string(buf[pos : pos+int(nameLen)])
		pos += int(nameLen)

		if len(buf)-pos < 4 {
			return nil, errors.Wrap(ErrCorruptList, "truncated instance")
		}
		inst := int32(binary.LittleEndian.Uint32(buf[pos:]))
		pos += 4

		if inst < 0 || inst > binaryInstanceMax {
			return nil, errors.Wrapf(ErrCorruptList, "instance %d out of range", inst)
		}

		l.entries = append(l.entries, Entry{Operation: op, Instance: inst})
	}

	l.resetOrders()
	return l, nil
}
