package hashrelay

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/filehash-labs/hashrelay/types"
	"github.com/filehash-labs/hashrelay/utils"
)

// resolveFileInfo derives the display filename and MIME type for a
// reference. Declared values win; path references fall back to the last
// path segment and an extension lookup; everything else degrades to the
// package defaults. Resolution never fails.
func resolveFileInfo(ref types.FileRef) (filename, contentType string) {
	filename = ref.Name
	if filename == "" {
		if ref.Path != "" {
			filename = filepath.Base(ref.Path)
		} else {
			filename = types.DefaultFilename
		}
	}

	contentType = ref.ContentType
	if contentType == "" {
		if ext := filepath.Ext(filename); ext != "" {
			contentType = utils.ExtToMimeType(ext)
		} else {
			contentType = types.DefaultContentType
		}
	}

	return filename, contentType
}

// materialize produces the full byte content of a reference. Buffers are
// returned as-is, paths are read from disk, readers are drained in full.
func materialize(ref types.FileRef) ([]byte, error) {
	switch {
	case ref.Data != nil:
		return ref.Data, nil
	case ref.Path != "":
		return os.ReadFile(ref.Path)
	case ref.Reader != nil:
		return io.ReadAll(ref.Reader)
	}
	return nil, errors.New("file reference has no content source")
}
