package export

import (
	"regexp"
	"strings"
)

// Word documents open HTML files directly when served as application/msword,
// so the .doc export is an HTML shell with Word-friendly styles around a
// converted body.
const wordHeader = `<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset='utf-8'>
<style>
body { font-family: 'Arial', sans-serif; line-height: 1.5; font-size: 11pt; }
h1 { font-size: 18pt; border-bottom: 1px solid #ccc; }
h2 { font-size: 14pt; color: #2e74b5; margin-top: 15pt; }
ul { margin-bottom: 10pt; }
</style>
</head>
<body>
`

const wordFooter = "</body></html>"

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Word converts the Markdown subset the model produces (H1, H2, "* " list
// items, **bold**) into an HTML document Microsoft Word accepts as .doc.
func Word(content string) []byte {
	lines := strings.Split(content, "\n")
	converted := make([]string, len(lines))
	for i, line := range lines {
		converted[i] = convertLine(line)
	}
	var b strings.Builder
	b.WriteString(wordHeader)
	b.WriteString(strings.Join(converted, "<br>"))
	b.WriteString(wordFooter)
	return []byte(b.String())
}

func convertLine(line string) string {
	switch {
	case strings.HasPrefix(line, "## "):
		line = "<h2>" + strings.TrimPrefix(line, "## ") + "</h2>"
	case strings.HasPrefix(line, "# "):
		line = "<h1>" + strings.TrimPrefix(line, "# ") + "</h1>"
	case strings.HasPrefix(line, "* "):
		line = "<li>" + strings.TrimPrefix(line, "* ") + "</li>"
	}
	return boldPattern.ReplaceAllString(line, "<strong>$1</strong>")
}
