// Package assets carries the default word lists compiled into the binary.
// The words package parses them; lines are read as-is.
package assets

import "embed"

// Names of the lists inside FS.
const (
	TargetsFile    = "targets.txt"
	DictionaryFile = "dictionary.txt"
)

//go:embed targets.txt dictionary.txt
var FS embed.FS
