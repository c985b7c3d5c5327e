package markdown

import (
	"html"
	"regexp"
	"strings"
)

// MIME type carried by the exported payload so word processors open it directly
const WordMIMEType = "application/msword"

var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletRe     = regexp.MustCompile(`^[-*]\s+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// builds a Word-importable HTML document from the markdown text. Consecutive
// bullet lines share one <ul> run, closed before the next non-bullet line and
// at end of document. Blank lines are skipped.
func ExportWord(text, title string) []byte {
	var doc strings.Builder

	doc.WriteString(`<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>`)
	doc.WriteString("<head><meta charset='utf-8'><title>")
	doc.WriteString(html.EscapeString(title))
	doc.WriteString("</title><style>")
	doc.WriteString(wordStyles)
	doc.WriteString("</style></head><body>")

	listOpen := false

	closeList := func() {
		if listOpen {
			doc.WriteString("</ul>")
			listOpen = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		// escape first, then rewrite **bold** spans; escaping never
		// introduces asterisks so the delimiter survives intact
		content := boldRe.ReplaceAllString(html.EscapeString(trimmed), "<b>$1</b>")

		switch {
		case strings.HasPrefix(trimmed, "# "):
			closeList()
			doc.WriteString("<h1>" + strings.TrimPrefix(content, "# ") + "</h1>")

		case strings.HasPrefix(trimmed, "## "):
			closeList()
			doc.WriteString("<h2>" + strings.TrimPrefix(content, "## ") + "</h2>")

		case strings.HasPrefix(trimmed, "### "):
			closeList()
			doc.WriteString("<h3>" + strings.TrimPrefix(content, "### ") + "</h3>")

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			if !listOpen {
				doc.WriteString("<ul>")
				listOpen = true
			}

			doc.WriteString("<li>" + bulletRe.ReplaceAllString(content, "") + "</li>")

		case trimmed == "":
			// blank lines carry no markup in the export

		default:
			closeList()
			doc.WriteString("<p>" + content + "</p>")
		}
	}

	closeList()
	doc.WriteString("</body></html>")

	return []byte(doc.String())
}

// derives the download filename from the document title: whitespace runs
// become underscores and the word-processor extension is appended
func ExportFilename(title string) string {
	return whitespaceRe.ReplaceAllString(title, "_") + ".doc"
}

const wordStyles = `body { font-family: 'Times New Roman', serif; font-size: 12pt; line-height: 1.5; color: #000; }
h1 { font-size: 16pt; font-weight: bold; text-align: center; margin-bottom: 24px; text-transform: uppercase; }
h2 { font-size: 14pt; font-weight: bold; margin-top: 18px; margin-bottom: 12px; }
h3 { font-size: 13pt; font-weight: bold; margin-top: 14px; margin-bottom: 10px; }
p { margin-bottom: 12px; text-align: justify; }
ul { margin-bottom: 12px; }
li { margin-bottom: 6px; }
strong, b { font-weight: bold; }`
