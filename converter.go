package staylens

// Converter renders HTML fragments as plain readable text.
// Listing descriptions arrive as embedded HTML; speech-oriented consumers
// need them as text.
type Converter interface {
	// Convert transforms an HTML fragment into readable text.
	Convert(html string) (string, error)
}
