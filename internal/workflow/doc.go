// Package workflow implements the gitf action pipeline: a closed command
// table mapping each action to its argument arity, validation predicate,
// and command renderer, plus the dispatcher that drives one invocation
// through validate → resolve → render → execute.
//
// The table is built once at engine construction and never mutated.
// Adding an action means adding a model.Action constant and a table
// entry, checked at compile time — there is no runtime registration.
//
// Suspension points within one action (git queries, manifest I/O, the
// final subprocess) take a context.Context. Actions are not safe to run
// concurrently against the same working directory: each one mutates the
// current branch, the manifest, and the tag set with no locking, so the
// engine assumes exclusive ownership of the repository for the duration
// of a Run call.
package workflow
