package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topics listed in readme.md as "* name: ...".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}

	slices.Sort(listed)
	if !slices.Equal(listed, all) {
		t.Errorf("readme.md lists %v, want %v", listed, all)
	}

	for _, topic := range all {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) failed: %v", topic, err)
		}
	}
}

func TestGetTopics(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) should fail")
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Metrics", "# Storage", "# Advice", "# Configuration"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopics(*) is missing %q", want)
		}
	}
	if strings.Contains(all, "Run `sg topic") {
		t.Errorf("GetTopics(*) should not include the readme")
	}
}

// TestHeadings checks that every topic opens with a single level 1 heading,
// so that concatenated topics read as separate sections.
func TestHeadings(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(all, "readme") {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first, ok := root.FirstChild().(*ast.Heading)
			if !ok || first.Level != 1 {
				t.Fatalf("topic %q does not start with a level 1 heading", topic)
			}

			count := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					count++
				}
				return ast.WalkContinue, nil
			})
			if count != 1 {
				t.Errorf("topic %q has %d level 1 headings, want 1", topic, count)
			}
		})
	}
}
