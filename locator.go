package staylens

// PayloadLocator finds the embedded client-state JSON inside a fetched page
// and parses it into a generic tree.
type PayloadLocator interface {
	// Locate returns the parsed payload of the page's data script element.
	// Fails with EPAYLOADNOTFOUND when no known script element matches,
	// EPAYLOADEMPTY when the element has no text content, and
	// EPAYLOADMALFORMED when the content is not valid JSON.
	Locate(html string) (Node, error)
}
