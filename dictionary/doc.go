// Package dictionary is the word provider consumed by the search core.
//
// What
//
//   - Dictionary: the read-only contract the engine needs, membership plus a
//     process-unique identity used to key neighbor caches.
//   - Set: an immutable, hash-backed implementation. Sets are never mutated
//     after construction, so they are safe to share between goroutines and a
//     neighbor computed against a Set stays valid for that Set's lifetime.
//   - WordsOfLength: length filtering is an explicit caller step. A game
//     computes the reduced Set once and hands it to every search.
//   - Load / LoadFile: read a plain one-word-per-line list, lowercasing,
//     dropping non-letter entries and keeping lengths in [MinLength, MaxLength].
//
// Identity
//
//	Every constructed Set, including every filtered view, receives a fresh ID.
//	Two Sets with identical contents still have different IDs; caches treat
//	them as different dictionaries.
//
// Complexity
//
//   - Contains: O(1) expected.
//   - WordsOfLength: O(N) on first call per length, O(1) afterwards.
package dictionary
