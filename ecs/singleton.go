package ecs

import "reflect"

// Singleton provides typed access to a single resource that is not tied to
// any entity. Use this for game state, configuration, or collaborators that
// systems share.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If the singleton does not exist yet it is created from initializer, or from
// the zero value when no initializer is given.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()
	if storage.getSingletonEntry(typ) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.putSingleton(typ, reflect.ValueOf(&value).Elem())
	}

	s := &Singleton[T]{storage: storage}
	s.updateCache()
	return s
}

// Init binds the Singleton to a storage.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Set replaces the singleton's value, creating it if needed.
func (s *Singleton[T]) Set(value T) {
	s.storage.putSingleton(reflect.TypeFor[T](), reflect.ValueOf(&value).Elem())
	s.updateCache()
}

// Exists returns true if the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	entry := s.storage.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		s.ptr = nil
		return
	}
	s.ptr = (*T)(entry.dataPtr)
}
