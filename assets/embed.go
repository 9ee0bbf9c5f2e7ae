// Package assets embeds the static game content: the house map and the
// default mad-libs story.
package assets

import (
	"embed"
)

//go:embed house.yaml madlibs.txt
var FS embed.FS

// HouseMap returns the YAML definition of the adventure's house.
func HouseMap() ([]byte, error) {
	return FS.ReadFile("house.yaml")
}

// MadLibsTemplate returns the default mad-libs story with {part of speech} blanks.
func MadLibsTemplate() (string, error) {
	b, err := FS.ReadFile("madlibs.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
