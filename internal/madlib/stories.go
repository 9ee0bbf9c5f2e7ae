// internal/madlib/stories.go
//
// Loads the story template once.
//
// Initialization behavior (Load):
//   1. If MADLIBS_TEMPLATE_FILE is set, read the template from that file.
//   2. Otherwise use the story embedded in the assets package.
//
// Environment variables:
//   MADLIBS_TEMPLATE_FILE=/path/to/story.txt

package madlib

import (
	"os"
	"sync"

	"github.com/robalobadob/text-games/apps/go-cli/assets"
)

var (
	loadOnce    sync.Once
	story       *Template
	loadErr     error
	storySource string
)

// Load returns the configured template. path overrides the embedded default
// when non-empty. The first call wins; later calls return the same result.
func Load(path string) (*Template, error) {
	loadOnce.Do(func() {
		var text string
		if path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				loadErr = err
				return
			}
			text, storySource = string(b), path
		} else {
			var err error
			text, err = assets.MadLibsTemplate()
			if err != nil {
				loadErr = err
				return
			}
			storySource = "embedded"
		}
		story, loadErr = ParseTemplate(text)
	})
	return story, loadErr
}

// Source reports where the loaded template came from ("embedded" or a path).
func Source() string { return storySource }
