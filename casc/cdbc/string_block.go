package cdbc

import (
	"list-root/casc/lbytes"
	"list-root/ds"
)

// StringBlock stores each distinct string once, in first insertion order.
type StringBlock struct {
	offsets *ds.LinkedHashMap[string, uint32]
	bs      []byte
}

func NewStringBlock() *StringBlock {
	return &StringBlock{
		offsets: ds.NewLinkedHashMap[string, uint32](),
		bs:      make([]byte, 0),
	}
}

// Add returns the offset of s, appending it zero terminated when unseen.
func (r *StringBlock) Add(s string) uint32 {
	offset, existed := r.offsets.Get(s)
	if existed {
		return offset
	}
	offset = r.offsets.PutIfAbsent(s, uint32(len(r.bs)))
	r.bs = append(r.bs, lbytes.EncodeValueCString(s)...)
	return offset
}

func (r *StringBlock) Strings() []string {
	return r.offsets.Keys()
}

func (r *StringBlock) Bytes() []byte {
	return r.bs
}
