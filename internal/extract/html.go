package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Article is the readable content pulled out of an HTML document.
type Article struct {
	Title string
	Text  string
}

// FromHTML parses an HTML document and returns its title and visible
// body text, skipping script, style, noscript, and iframe subtrees.
func FromHTML(htmlContent string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	return &Article{
		Title: documentTitle(doc),
		Text:  visibleText(doc),
	}, nil
}

// visibleText collects text nodes, one space between fragments.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "title":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}

// documentTitle returns the text of the first <title> element.
func documentTitle(n *html.Node) string {
	var title string

	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return title
}
