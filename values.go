package pretty

// Pair is an ordered two-value aggregate. It renders as
// "(first: second)" with the default configuration.
type Pair[K, V any] struct {
	First  K
	Second V
}

// MakePair returns a Pair holding first and second.
func MakePair[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

// Optional holds zero or one value of type T. The zero Optional is empty.
type Optional[T any] struct {
	value T
	valid bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}
