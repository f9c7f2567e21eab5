// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jeranaias/rigrun-composer/internal/markdown"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the HTML renderer. The zero value matches the plain
// renderer: no escaping outside code, no classes, no highlighting.
type Options struct {
	// EscapeText HTML-escapes text outside code blocks before emphasis runs.
	EscapeText bool

	// Sanitize passes the final markup through an allowlist of the tags the
	// renderer emits.
	Sanitize bool

	// Highlight colors fenced code with chroma. Blocks whose language is
	// unknown and cannot be guessed stay plain.
	Highlight bool

	// HighlightStyle is the chroma style name (e.g. "monokai", "github").
	HighlightStyle string

	// Classes maps a tag name to the class attribute put on that tag.
	Classes map[string]string
}

// TailwindClasses returns utility classes for a light chat bubble.
func TailwindClasses() map[string]string {
	return map[string]string{
		"pre": "bg-gray-100 p-2 rounded my-2",
		"h1":  "text-2xl font-semibold my-2",
		"h2":  "text-xl font-semibold my-2",
		"h3":  "text-lg font-semibold my-2",
		"li":  "ml-4",
	}
}

// =============================================================================
// PATTERNS
// =============================================================================

var (
	fencePattern       = regexp.MustCompile("(?s)" + markdown.Fence + "(.*?)" + markdown.Fence)
	placeholderPattern = regexp.MustCompile(`\x00(\d+)\x00`)

	headingPatterns = []struct {
		tag string
		re  *regexp.Regexp
	}{
		{"h3", regexp.MustCompile(`^### (.*)$`)},
		{"h2", regexp.MustCompile(`^## (.*)$`)},
		{"h1", regexp.MustCompile(`^# (.*)$`)},
	}

	// Longest token first so *** is not eaten by ** or *.
	emphasisPatterns = []struct {
		re   *regexp.Regexp
		tags []string
	}{
		{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), []string{"strong", "em"}},
		{regexp.MustCompile(`\*\*(.+?)\*\*`), []string{"strong"}},
		{regexp.MustCompile(`\*(.+?)\*`), []string{"em"}},
		{regexp.MustCompile(`~~(.+?)~~`), []string{"del"}},
	}
)

// =============================================================================
// RENDER
// =============================================================================

// Render converts text to HTML with the zero Options.
func Render(text string) string {
	return Options{}.Render(text)
}

// Render converts text to HTML.
func (o Options) Render(text string) string {
	// NUL marks code placeholders; it never belongs in a message.
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []string
	text = fencePattern.ReplaceAllStringFunc(text, func(m string) string {
		body := m[len(markdown.Fence) : len(m)-len(markdown.Fence)]
		blocks = append(blocks, o.codeBlock(body))
		return "\x00" + strconv.Itoa(len(blocks)-1) + "\x00"
	})

	r := lineRenderer{opts: o}
	for _, line := range strings.Split(text, "\n") {
		r.line(line)
	}
	r.flush()

	out := placeholderPattern.ReplaceAllStringFunc(r.String(), func(m string) string {
		i, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || i >= len(blocks) {
			return ""
		}
		return blocks[i]
	})

	if o.Sanitize {
		out = Sanitize(out)
	}
	return out
}

// open returns the opening tag with its configured class, if any.
func (o Options) open(tag string) string {
	if class := o.Classes[tag]; class != "" {
		return "<" + tag + ` class="` + html.EscapeString(class) + `">`
	}
	return "<" + tag + ">"
}

// inline escapes (when enabled) and applies emphasis to one line of text.
func (o Options) inline(s string) string {
	if o.EscapeText {
		s = html.EscapeString(s)
	}
	for _, p := range emphasisPatterns {
		var start, end string
		for i := range p.tags {
			start += o.open(p.tags[i])
			end += "</" + p.tags[len(p.tags)-1-i] + ">"
		}
		re := p.re
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			return start + re.FindStringSubmatch(m)[1] + end
		})
	}
	return s
}

// =============================================================================
// LINE RENDERER
// =============================================================================

type segment struct {
	html  string
	block bool
}

// lineRenderer groups lines into blocks. Line breaks are only emitted
// between two inline segments; block elements break on their own.
type lineRenderer struct {
	opts  Options
	segs  []segment
	list  markdown.Kind
	items []string
}

func (r *lineRenderer) line(line string) {
	for _, h := range headingPatterns {
		if m := h.re.FindStringSubmatch(line); m != nil {
			r.flush()
			r.push(r.opts.open(h.tag)+r.opts.inline(m[1])+"</"+h.tag+">", true)
			return
		}
	}

	if l := markdown.Classify(line); l.IsList() {
		if l.Kind != r.list {
			r.flush()
			r.list = l.Kind
		}
		r.items = append(r.items, r.opts.open("li")+r.opts.inline(l.Content)+"</li>")
		return
	}

	r.flush()
	if trimmed := strings.TrimSpace(line); placeholderPattern.FindString(trimmed) == trimmed && trimmed != "" {
		r.push(trimmed, true)
		return
	}
	r.push(r.opts.inline(line), false)
}

// flush closes the open list run, if any.
func (r *lineRenderer) flush() {
	if r.list == markdown.KindPlain {
		return
	}
	tag := "ul"
	if r.list == markdown.KindOrdered {
		tag = "ol"
	}
	r.push(r.opts.open(tag)+strings.Join(r.items, "")+"</"+tag+">", true)
	r.list = markdown.KindPlain
	r.items = nil
}

func (r *lineRenderer) push(s string, block bool) {
	r.segs = append(r.segs, segment{html: s, block: block})
}

func (r *lineRenderer) String() string {
	var b strings.Builder
	for i, s := range r.segs {
		if i > 0 && !s.block && !r.segs[i-1].block {
			b.WriteString("<br/>")
		}
		b.WriteString(s.html)
	}
	return b.String()
}
