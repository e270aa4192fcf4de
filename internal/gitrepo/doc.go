// Package gitrepo provides the read-only git queries used by the gitf
// workflow engine: repository detection, branch existence, the current
// branch, and tag history.
//
// All operations shell out to the git binary rather than using a Go git
// library (e.g., go-git). This approach:
//   - Avoids CGO dependencies (libgit2)
//   - Uses the exact same git behavior the user sees in their terminal
//   - Keeps the mutation path uniform: queries run here, while every
//     mutating command is rendered by the workflow engine and executed
//     as a shell sequence, so the user can reproduce it by hand
package gitrepo
