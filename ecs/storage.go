package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage holds the singleton resources shared by the systems of a scheduler.
// Each resource type has exactly one value; pointers handed out by Storage
// stay valid for its lifetime, even when the value is replaced.
type Storage struct {
	singletons *intmap.Map[int, *singletonEntry]
	order      []int
}

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// StorageStats describes the resources currently held by a Storage.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: intmap.New[int, *singletonEntry](16),
	}
}

// AddSingleton stores value as the singleton of its dynamic type. If a
// singleton of that type already exists its contents are overwritten in place.
func (s *Storage) AddSingleton(value any) {
	if value == nil {
		panic("cannot add a nil singleton")
	}
	s.putSingleton(reflect.TypeOf(value), reflect.ValueOf(value))
}

func (s *Storage) putSingleton(typ reflect.Type, value reflect.Value) {
	if typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Func || typ.Kind() == reflect.Chan {
		panic("singletons cannot be pointers, channels, or functions")
	}

	id := typeId(typ)
	if entry, ok := s.singletons.Get(id); ok {
		entry.value.Elem().Set(value)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(value)
	s.singletons.Put(id, &singletonEntry{
		typ:     typ,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
	s.order = append(s.order, id)
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeId(typ))
	if !ok {
		return nil
	}
	return entry
}

// ReadSingleton points *out at the stored singleton of out's element type.
// out must be a pointer to a pointer, e.g. `var cfg *Config; storage.ReadSingleton(&cfg)`.
// Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	target := rv.Elem()
	entry := s.getSingletonEntry(target.Type().Elem())
	if entry == nil {
		return false
	}

	target.Set(entry.value)
	return true
}

// CollectStats returns the number and names of the stored singletons.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		SingletonCount: s.singletons.Len(),
		SingletonTypes: make([]string, 0, len(s.order)),
	}
	for _, id := range s.order {
		if entry, ok := s.singletons.Get(id); ok {
			stats.SingletonTypes = append(stats.SingletonTypes, entry.typ.String())
		}
	}
	sort.Strings(stats.SingletonTypes)
	return stats
}

func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
