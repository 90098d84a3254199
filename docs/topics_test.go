package docs

import (
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that the readme and the topic files stay in sync:
// every topic listed in readme.md must load, and every topic file must be
// listed in readme.md.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("cannot read readme topic: %v", err)
	}

	re := regexp.MustCompile(`(?m)^\*\s+([^:]+):`)
	listed := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(readme, -1) {
		topic := strings.TrimSpace(m[1])
		listed[topic] = true
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme lists topic %q that does not load: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	for _, topic := range all {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicStructure parses each topic as markdown and checks it opens
// with a level-1 heading.
func TestTopicStructure(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	all = append(all, "readme")

	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q): %v", topic, err)
		}
		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))

		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", topic)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with a level-%d heading, want level 1", topic, heading.Level)
		}
	}
}
