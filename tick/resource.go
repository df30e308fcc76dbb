package tick

import "reflect"

// Resource gives a system access to a single value shared by every system of
// a scheduler, such as the game session. Declare it as a struct field and the
// Scheduler initializes it on Register.
type Resource[T any] struct {
	scheduler *Scheduler
	ptr       *T
	gen       uint64
}

// Provide makes value available to Resource[T] fields. Providing the same type
// twice replaces the previous value.
func Provide[T any](s *Scheduler, value *T) {
	s.resources[reflect.TypeFor[T]()] = value
	s.generation++
}

// Lookup returns the value provided for T, or nil.
func Lookup[T any](s *Scheduler) *T {
	v, ok := s.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// Init binds the resource to a scheduler. Register calls it automatically.
func (r *Resource[T]) Init(s *Scheduler) {
	r.scheduler = s
	r.ptr = Lookup[T](s)
	r.gen = s.generation
}

// Get returns the provided value, or nil if none has been provided.
func (r *Resource[T]) Get() *T {
	if r.scheduler != nil && r.gen != r.scheduler.generation {
		r.ptr = Lookup[T](r.scheduler)
		r.gen = r.scheduler.generation
	}
	return r.ptr
}

// Exists reports whether a value has been provided.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}
