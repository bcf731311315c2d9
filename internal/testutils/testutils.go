// Package testutils holds cross-package test helpers used by the bignum
// and primality test files. Kept internal since none of it is meant for
// outside callers.
package testutils
