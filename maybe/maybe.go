/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or holds nothing (Nothing). The zero value
of Maybe is Nothing, which lets clients embed optional fields in structs
without initialization.

Clients access the value by pattern matching:

    var v string
    switch m := x.Match(); m {
    case m.Just(&v):
        ... use v
    case m.Nothing():
        ...
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// Match starts a pattern match on m.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// WithDefault returns the value of m, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to the value of m, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher matches the two cases of a Maybe. A case method returns the
// matcher itself if the case applies, nil otherwise. Matchers compare by
// identity, thus T need not be comparable.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
