// Package kernel provides core domain primitives shared by every aggregate of
// the dispatch system: identifiers and money.
package kernel
