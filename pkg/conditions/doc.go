// Package conditions implements the condition tree rules are matched
// with: the all/any/not composites and the path, mime, age, and size
// leaves. Conditions are built from declaration nodes through a factory
// registry keyed by type tag; composites recurse through the same
// factory, so arbitrarily nested trees come straight from the rule file.
//
// Conditions are immutable after construction, with one exception: the
// mime condition memoizes match results per path for the lifetime of the
// process.
package conditions
