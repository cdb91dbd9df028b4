// Package prompts builds the LLM prompts for both pipeline stages. Template
// text lives in JSON files embedded at compile time; placeholders use the
// {{.Key}} form and are substituted with plain string replacement.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by filename and key. The filename carries
// no path component (e.g. "generation.json").
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return tmpl, nil
}

// MustGet retrieves a prompt template, panicking if it is missing. Embedded
// templates are a build-time artifact, so a miss is a programming error.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format replaces {{.Key}} placeholders in template with values from data.
// Prompt bodies contain literal braces and percent signs, so this is plain
// string replacement rather than text/template or fmt.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if templates, ok := cache[filename]; ok {
		cacheMu.RUnlock()
		return templates, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = templates
	cacheMu.Unlock()

	return templates, nil
}

// ClearCache drops all cached prompt files. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}
