package ds

import (
	"bytes"
	"container/list"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion-order in serialization and keys fetching.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keys = append(keys, key)
	}
	return keys
}

// Put keeps the original position of an existing key and replaces its value.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	_, existed := r.hashMap[key]
	if !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

// PutIfAbsent stores value only for a new key and returns the value held
// for key afterwards.
func (r *LinkedHashMap[K, V]) PutIfAbsent(key K, value V) V {
	existing, existed := r.hashMap[key]
	if existed {
		return existing
	}
	r.Put(key, value)
	return value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	bs := make([]byte, 0)
	buf := bytes.NewBuffer(bs)

	buf.WriteRune('{')
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		value := r.hashMap[key]

		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if runner.Next() != nil {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
