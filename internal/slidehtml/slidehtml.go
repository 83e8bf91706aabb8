// Package slidehtml reads raw labels out of an HTML slide export.
// Presentation tools export decks as one <section> per slide; each
// text-bearing block inside a section is treated as one shape.
package slidehtml

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/smartplan/pdid/pkg/pdid/label"
)

// shape elements whose text is collected as one label each
var shapeTags = map[string]bool{
	"p": true, "div": true, "span": true, "li": true,
	"h1": true, "h2": true, "h3": true, "td": true,
}

// Parse extracts raw labels from an HTML slide export, in document
// order: slide index follows <section> order, shape index follows
// element order within the section.
func Parse(r io.Reader) ([]label.RawLabel, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse slide export: %w", err)
	}

	var labels []label.RawLabel
	slide := 0

	var walkSlides func(n *html.Node)
	walkSlides = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "section" {
			shape := 0
			collectShapes(n, slide, &shape, &labels)
			slide++
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkSlides(c)
		}
	}
	walkSlides(doc)

	return labels, nil
}

// collectShapes walks one slide's subtree. The shallowest shape-tagged
// element wins: its whole text becomes one label, and nested shape
// tags are not split out again.
func collectShapes(n *html.Node, slide int, shape *int, out *[]label.RawLabel) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && shapeTags[c.Data] {
			text := strings.TrimSpace(textContent(c))
			if text != "" {
				*out = append(*out, label.RawLabel{
					Text: text,
					Source: label.SourceRef{
						Slide:     slide,
						Shape:     *shape,
						ShapeName: nodeName(c),
					},
				})
				*shape++
			}
			continue
		}
		collectShapes(c, slide, shape, out)
	}
}

// textContent concatenates every text node under n.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

// nodeName returns the element's id attribute when present, otherwise
// its tag name.
func nodeName(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			return attr.Val
		}
	}
	return n.Data
}
