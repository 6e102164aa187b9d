package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Get(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	listed := make(map[string]bool)
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base != "readme" && !listed[base] {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}

	if all := Names(); len(all) != len(topicsInReadme) {
		t.Errorf("Names() = %v, readme lists %v", all, topicsInReadme)
	}
}

// TestTitles checks that every topic starts with a level one heading.
func TestTitles(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		h, ok := root.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("%s does not start with a level one heading", file)
		}
	}
}

func TestRead(t *testing.T) {
	content, err := Read(All)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Concepts") || !strings.Contains(content, "# Export") {
		t.Errorf("Read(*) misses topics")
	}
	if strings.Contains(content, "# bflow documentation") {
		t.Errorf("Read(*) includes the readme")
	}
	if _, err := Read("cash", "nope"); err == nil {
		t.Errorf("Read(nope) succeeded")
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct{ name, want string }{
		{"concepts", "Concepts"},
		{Readme, "bflow documentation"},
		{"nope", "nope"},
	}
	for _, tc := range testCases {
		if got := Title(tc.name); got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
