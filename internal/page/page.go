// Package page wraps a parsed HTML document behind the small query surface
// the detectors need.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Script is one <script> element's relevant parts.
type Script struct {
	Src    string
	Inline string
}

// Document is a parsed, queryable view of one page. Parsing is best-effort:
// real-world pages are frequently invalid HTML and still produce a usable
// tree.
type Document struct {
	doc *goquery.Document
	raw string
}

// Parse builds a Document from raw HTML. It is total: malformed markup
// degrades to a best-effort tree, never an error.
func Parse(rawHTML string) *Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// Unreachable with a string reader; keep a usable empty tree anyway.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc, raw: rawHTML}
}

// Raw returns the original HTML.
func (d *Document) Raw() string {
	return d.raw
}

// Title returns the trimmed <title> text.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// MatchCount returns the number of elements matching a CSS selector.
func (d *Document) MatchCount(selector string) int {
	return d.doc.Find(selector).Length()
}

// Text returns the whole-document visible text, lowercased. Script, style,
// and noscript subtrees are excluded so minified JS cannot contribute
// phone-shaped tokens.
func (d *Document) Text() string {
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		sel = d.doc.Selection
	}
	clone := sel.Clone()
	clone.Find("script,style,noscript").Remove()
	return strings.ToLower(clone.Text())
}

// Forms returns the inner markup of every <form> element.
func (d *Document) Forms() []string {
	var forms []string
	d.doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}
		forms = append(forms, inner)
	})
	return forms
}

// Scripts returns every <script> element's src attribute and inline content.
func (d *Document) Scripts() []Script {
	var scripts []Script
	d.doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		scripts = append(scripts, Script{Src: src, Inline: s.Text()})
	})
	return scripts
}

// LinkHrefs returns the href of every <link> element.
func (d *Document) LinkHrefs() []string {
	var hrefs []string
	d.doc.Find("link").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}
