package templates

import (
	"fmt"
	"html"
	"strings"
)

// GetHeading renders a section heading.
func GetHeading(text string) string {
	return fmt.Sprintf(`<h2 style="font-family: Helvetica, sans-serif; font-size: 20px; font-weight: bold; margin: 0 0 16px;">%s</h2>`,
		html.EscapeString(text))
}

// GetParagraph renders a standard paragraph with escaped text.
func GetParagraph(text string) string {
	return fmt.Sprintf(`<p style="font-family: Helvetica, sans-serif; font-size: 16px; font-weight: normal; margin: 0 0 16px;">%s</p>`,
		html.EscapeString(text))
}

// GetQuoteBlock renders user-submitted text in a bordered block,
// preserving line breaks.
func GetQuoteBlock(text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return fmt.Sprintf(`<blockquote style="border-left: 3px solid #eaebed; color: #4a4a4a; font-family: Helvetica, sans-serif; font-size: 16px; margin: 0 0 16px; padding-left: 16px;">%s</blockquote>`,
		escaped)
}

// GetCodeBlock renders a prominent one-time code.
func GetCodeBlock(code string) string {
	return fmt.Sprintf(`<p style="background: #f4f5f6; border-radius: 8px; font-family: monospace; font-size: 20px; letter-spacing: 2px; margin: 0 0 16px; padding: 16px; text-align: center;">%s</p>`,
		html.EscapeString(code))
}
