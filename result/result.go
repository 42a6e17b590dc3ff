/*
Package result implements a type for the outcome of a computation that may fail.

A Result is either Ok, holding a value, or Err, holding an error. Clients may
pattern match on a result:

    var s string
    var err error
    switch m := r.Match(); m {
    case m.Ok(&s):
        ...
    case m.Err(&err):
        ...
    }

or fall back to the usual Go idiom with Get.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

// Result is the result of a computation producing a T, or failing.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps a failure. A nil error is an Ok of T's zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of converts a Go (value, error) pair into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// IsOk is true for a successful result.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get unpacks r in the usual Go manner.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// WithDefault returns the value of r, or def if r is an error.
func (r Result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Match starts a pattern match on r.
func (r Result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

// Map applies f to the value of r, if r is Ok. Errors pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// --- Matching --------------------------------------------------------------

// Matcher matches the two cases of a Result. Matchers compare by identity,
// thus T need not be comparable.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
