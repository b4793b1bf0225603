package domain

import "encoding/json"

// Document is a retrieved JSON document.
// It only lives for the duration of one export.
type Document struct {
	// Name is the descriptor's logical name.
	Name string

	// Locator is where the document was fetched from.
	Locator string

	// Body is the document exactly as received. It is treated as opaque.
	Body json.RawMessage
}

// Entry is one file written into an archive.
type Entry struct {
	// Filename is the path of the entry at the archive root.
	Filename string

	// Content is the serialised document.
	Content []byte
}

// Size returns the uncompressed size of the entry content.
func (e Entry) Size() int {
	return len(e.Content)
}

// Filename returns the archive entry filename for this document.
func (d Document) Filename() string {
	return d.Name + EntryExtension
}
