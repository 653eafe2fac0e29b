package export

// Markdown returns the improved content unchanged. The model already emits
// Markdown, so this format is a byte-for-byte passthrough.
func Markdown(content string) []byte {
	return []byte(content)
}
