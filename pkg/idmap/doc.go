// Package idmap assigns short enumerated labels to arbitrary identifiers.
//
// Graph importers are often picky about identifiers: they want them short,
// free of delimiter characters, or positionally compact. A [Map] hands out a
// stable replacement label for every identifier it sees:
//
//	m := idmap.New("n")
//	m.Resolve("github.com/spf13/cobra") // "n1"
//	m.Resolve("gopkg.in/yaml.v3")       // "n2"
//	m.Resolve("github.com/spf13/cobra") // "n1" again
//
// Labels are the base prefix followed by the 1-based count of distinct
// identifiers seen at the time of first sight, so they are assigned in
// strictly increasing order and never collide within one Map.
//
// # Concurrency
//
// A Map is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access themselves.
package idmap
