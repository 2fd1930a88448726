// Package slicest holds small generic slice helpers used across the UI code.
package slicest

// Map converts slice S of T into a []U by applying fn to each element.
func Map[T any, S ~[]T, U any](s S, fn func(T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(t)
	}
	return result
}

// MapI converts slice S of T into a []U.
// - I: Provides index to callback.
func MapI[T any, S ~[]T, U any](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Filter returns the elements of s for which fn reports true, in order.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	result := make(S, 0, len(s))
	for _, t := range s {
		if fn(t) {
			result = append(result, t)
		}
	}
	return result
}

// ToMap builds a map from slice S, deriving a key and value per element.
// Later elements win on key collisions.
func ToMap[T any, K comparable, V any, S ~[]T](s S, fn func(T) (K, V)) map[K]V {
	result := make(map[K]V, len(s))
	for _, t := range s {
		k, v := fn(t)
		result[k] = v
	}
	return result
}

// Contains reports whether s has an element equal to v.
func Contains[T comparable, S ~[]T](s S, v T) bool {
	for _, t := range s {
		if t == v {
			return true
		}
	}
	return false
}
