// Package strkit is a small toolkit for working with strings as numbers:
// arbitrary-base integer re-encoding and navigation of bounded string spaces.
//
// 🚀 What is strkit?
//
//	A lightweight, zero-runtime-dependency library that brings together:
//		• baseconv — convert signed integers between arbitrary bases over a
//		  caller-supplied symbol alphabet (hex → decimal, base36 → binary, …)
//		• keyspace — treat all strings of length bytesMin..bytesMax over an
//		  alphabet as one totally ordered, finite space: uniform and weighted
//		  random sampling plus exact successor/predecessor navigation
//
// ✨ Why choose strkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – every operation is O(length) and side-effect-free
//
// Everything is organized under two subpackages:
//
//	baseconv/ — arbitrary-base conversion with custom digit alphabets
//	keyspace/ — random key generation & lexicographic next/prev over a
//	            bounded-length string space
//
// Quick ASCII example (keyspace over {a,b}, lengths 1..2):
//
//	a → aa → ab → b → ba → bb
//
//	shorter strings precede their extensions; max-length strings roll
//	over like an odometer.
//
// Dive into each package's doc.go for contracts, complexity notes, and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/strkit
package strkit
