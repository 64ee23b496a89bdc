package ioporder

import (
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

type jsonEntry struct {
	Op       string `json:"op"`
	Instance int32  `json:"instance"`
}

type jsonList struct {
	Version int32       `json:"version"`
	Order   []jsonEntry `json:"order"`
}

// SerializeJSON renders the list together with its version tag. Order keys
// are not written; they are recomputed on load.
func (l *List) SerializeJSON(kind Version) ([]byte, error) {
	doc := jsonList{
		Version: int32(kind),
		Order:   make([]jsonEntry, len(l.entries)),
	}
	for i, e := range l.entries {
		doc.Order[i] = jsonEntry{Op: e.Operation, Instance: e.Instance}
	}

	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal iop order list")
	}
	return data, nil
}

// DeserializeJSON parses a document written by SerializeJSON, recomputes
// the order keys and checks the rawprepare/gamma bracket. It returns the
// list and the version tag stored in the document.
func DeserializeJSON(data []byte) (*List, Version, error) {
	var doc jsonList
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, Custom, errors.Wrap(ErrCorruptList, err.Error())
	}

	l := &List{entries: make([]Entry, 0, len(doc.Order))}
	for _, e := range doc.Order {
		if e.Op == "" || len(e.Op) > OperationMaxLen {
			return nil, Custom, errors.Wrapf(ErrCorruptList, "bad operation name %q", e.Op)
		}
		l.entries = append(l.entries, Entry{Operation: e.Op, Instance: e.Instance})
	}

	l.resetOrders()
	if err := l.sanityCheck(); err != nil {
		return nil, Custom, err
	}
	return l, Version(doc.Version), nil
}
