// Package docs holds the user documentation of mt, as markdown topics
// embedded in the binary.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing all the others.
const index = "readme"

// GetTopic returns the content of a documentation topic.
// The topic "*" is all the topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, the index excluded.
func GetAllTopics() ([]string, error) {
	var topics []string
	err := fs.WalkDir(docs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if base != index {
			topics = append(topics, base)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(topics)
	return topics, nil
}

// Title returns the text of the first heading of a topic.
func Title(topic string) (string, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return "", err
	}
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			line := h.Lines().At(i)
			b.Write(line.Value(source))
		}
		title = strings.TrimSpace(b.String())
		return ast.WalkStop, nil
	})
	if title == "" {
		return "", fmt.Errorf("topic %q has no title", topic)
	}
	return title, nil
}
