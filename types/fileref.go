package types

import "io"

const (
	// DefaultFilename is used when a reference carries no name at all.
	DefaultFilename = "file"
	// DefaultContentType is used when no MIME type can be derived.
	DefaultContentType = "application/octet-stream"
)

// FileRef is an opaque handle to the content of one file plus its declared
// name and content type. Exactly one of Path, Data or Reader is set,
// depending on which constructor built it.
type FileRef struct {
	Path   string
	Data   []byte
	Reader io.Reader

	Name        string // declared filename, overrides path-derived names
	ContentType string // declared MIME type, overrides extension lookup
}

// FilePath references a file on disk. The filename is derived from the last
// path segment and the content type from its extension.
func FilePath(path string) FileRef {
	return FileRef{Path: path}
}

// FileBytes references in-memory content with no inherent name.
func FileBytes(data []byte) FileRef {
	return FileRef{Data: data}
}

// FileReader references streamed content. The reader is drained in full when
// the hash call materializes it.
func FileReader(r io.Reader) FileRef {
	return FileRef{Reader: r}
}

// WithName returns a copy of the reference with a declared filename.
func (f FileRef) WithName(name string) FileRef {
	f.Name = name
	return f
}

// WithContentType returns a copy of the reference with a declared MIME type.
func (f FileRef) WithContentType(contentType string) FileRef {
	f.ContentType = contentType
	return f
}
