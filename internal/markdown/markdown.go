package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MaxTitleLevel is the deepest heading level considered a document title.
const MaxTitleLevel = 2

// titleLine matches a source line holding a level 1 or 2 heading marker
// followed by a space and text.
var titleLine = regexp.MustCompile(`^#{1,2} (.+)$`)

// ParseBody parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body))
}

// FirstHeading returns the text of the first line that starts with "# " or
// "## " and carries text. Setext headings are not titles. Lines inside code
// blocks, HTML blocks and block quotes are not considered.
func FirstHeading(body []byte) (string, bool) {
	root := ParseBody(body)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*gmast.Heading)
		if !ok || heading.Level > MaxTitleLevel || heading.Lines().Len() == 0 {
			continue
		}
		line := sourceLine(body, heading.Lines().At(0).Start)
		m := titleLine.FindSubmatch(line)
		if m == nil {
			continue
		}
		if title := strings.TrimSpace(string(m[1])); title != "" {
			return title, true
		}
	}
	return "", false
}

// sourceLine returns the line of src containing offset, without its line ending.
func sourceLine(src []byte, offset int) []byte {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return bytes.TrimSuffix(src[start:end], []byte("\r"))
}
