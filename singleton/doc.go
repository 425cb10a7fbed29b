// SPDX-License-Identifier: MIT

// Package singleton restricts a type to one constructed instance per process.
//
// Wrap0..Wrap3 turn a constructor into a function with the same signature
// that builds the value on the first call and returns that same value on
// every later call. Arguments of later calls are ignored, not compared:
//
//	type Dummy struct{ A, B int }
//	newDummy := singleton.Wrap2(func(a, b int) *Dummy { return &Dummy{a, b} })
//	d1 := newDummy(1, 2)
//	d2 := newDummy(3, 4) // d2 == d1, d2.A == 1, d2.B == 2
//
// Instances are keyed by the result type T, so two wrappers producing the
// same T share one slot. That includes interface types: two unrelated
// constructors returning io.Reader get the same instance. The package-level registry is never torn down;
// tests that need isolation create their own Registry and call Get.
//
// All entry points are safe for concurrent use. First construction of a
// slot is serialized: concurrent callers block until the winner's
// constructor returns and then observe its value. Different slots build
// independently, so a constructor may itself obtain other singletons.
package singleton
