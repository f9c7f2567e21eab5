// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jeranaias/rigrun-composer/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports transcripts to a standalone HTML page with embedded CSS.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a transcript to HTML. Message bodies go through the
// display renderer; everything else on the page is escaped here.
func (e *HTMLExporter) Export(t model.Transcript) ([]byte, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTranscript
	}

	theme := e.options.Theme
	if theme != "light" {
		theme = "dark"
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(t.Title())))
	sb.WriteString("    <meta name=\"generator\" content=\"rigrun-composer\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", t.StartedAt().Format(time.RFC3339)))
	sb.WriteString(htmlCSS)
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(t))
	}

	sb.WriteString("        <main class=\"transcript\">\n")
	for i, msg := range t.Messages() {
		sb.WriteString(e.renderMessage(i+1, msg))
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	sb.WriteString(fmt.Sprintf("            <p>Exported from <strong>rigrun composer</strong> on %s</p>\n",
		time.Now().Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

func (e *HTMLExporter) renderHeader(t model.Transcript) string {
	var sb strings.Builder

	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", html.EscapeString(t.Title())))
	sb.WriteString("            <div class=\"metadata\">\n")
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Started:</strong> %s</span>\n", formatTimestamp(t.StartedAt())))
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Messages:</strong> %d</span>\n", t.Len()))
	sb.WriteString("            </div>\n")
	sb.WriteString("        </header>\n")

	return sb.String()
}

func (e *HTMLExporter) renderMessage(n int, msg model.SentMessage) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("            <article class=\"message\" id=\"msg-%s\">\n", html.EscapeString(msg.ID)))
	sb.WriteString("                <div class=\"message-header\">\n")
	sb.WriteString(fmt.Sprintf("                    <span class=\"label\">#%d</span>\n", n))
	if e.options.IncludeTimestamps {
		sb.WriteString(fmt.Sprintf("                    <time datetime=\"%s\">%s</time>\n",
			msg.SentAt.Format(time.RFC3339), formatShortTimestamp(msg.SentAt)))
	}
	sb.WriteString("                </div>\n")
	sb.WriteString("                <div class=\"message-content\">")
	sb.WriteString(e.options.Render.Render(msg.Content))
	sb.WriteString("</div>\n")
	sb.WriteString("            </article>\n")

	return sb.String()
}

const htmlCSS = `    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            --font-mono: "SF Mono", "Monaco", "Inconsolata", "Fira Code", "Source Code Pro", monospace;
        }

        .dark-theme {
            --bg-primary: #1a1b26;
            --bg-message: #24283b;
            --bg-code: #16161e;
            --text-primary: #c0caf5;
            --text-muted: #565f89;
            --accent: #7aa2f7;
            --border: #292e42;
        }

        .light-theme {
            --bg-primary: #f5f5f5;
            --bg-message: #ffffff;
            --bg-code: #f6f8fa;
            --text-primary: #24292f;
            --text-muted: #6e7781;
            --accent: #0969da;
            --border: #d0d7de;
        }

        body {
            font-family: var(--font-sans);
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.6;
        }

        .container { max-width: 860px; margin: 0 auto; padding: 2rem 1rem; }

        .header { margin-bottom: 2rem; border-bottom: 1px solid var(--border); padding-bottom: 1rem; }
        .header h1 { font-size: 1.5rem; color: var(--accent); }
        .metadata { display: flex; gap: 1.5rem; color: var(--text-muted); font-size: 0.875rem; margin-top: 0.5rem; }

        .message {
            background: var(--bg-message);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 1rem 1.25rem;
            margin-bottom: 1rem;
        }
        .message-header { display: flex; justify-content: space-between; color: var(--text-muted); font-size: 0.8rem; margin-bottom: 0.5rem; }
        .message-content h1, .message-content h2, .message-content h3 { margin: 0.5rem 0; }
        .message-content ul, .message-content ol { padding-left: 1.5rem; margin: 0.25rem 0; }
        .message-content pre {
            font-family: var(--font-mono);
            background: var(--bg-code);
            border-radius: 6px;
            padding: 0.75rem;
            overflow-x: auto;
            white-space: pre;
            margin: 0.5rem 0;
        }

        .footer { text-align: center; color: var(--text-muted); font-size: 0.8rem; margin-top: 2rem; }
    </style>
`
