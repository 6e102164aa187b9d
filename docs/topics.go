// Package docs holds the help topics of bflow.
//
// A topic is a markdown file starting with a level one heading, its title.
// The readme topic is the entry point and is not listed among the others.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the topic shown when none is asked for.
const Readme = "readme"

// All stands for every topic but the readme.
const All = "*"

// Names lists the topics but the readme, sorted.
func Names() []string {
	matches, _ := fs.Glob(files, "*.md") // the pattern is valid
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != Readme {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Get returns the content of a topic.
func Get(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no topic %q, see 'bflow topic' for the list", name)
	}
	return string(content), nil
}

// MustGet is like Get but panics when the topic does not exist.
func MustGet(name string) string {
	content, err := Get(name)
	if err != nil {
		panic(err)
	}
	return content
}

// Title returns the text of the first heading of a topic, or its name.
func Title(name string) string {
	content, err := Get(name)
	if err != nil {
		return name
	}
	first, _, _ := strings.Cut(content, "\n")
	if title, ok := strings.CutPrefix(first, "# "); ok {
		return strings.TrimSpace(title)
	}
	return name
}

// Read concatenates topics, each followed by an empty line. All expands to
// every topic.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range expand(names) {
		content, err := Get(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func expand(names []string) []string {
	var out []string
	for _, name := range names {
		if name == All {
			out = append(out, Names()...)
			continue
		}
		out = append(out, name)
	}
	return out
}
