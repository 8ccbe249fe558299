package types

// HashData carries the success payload of a hash call.
type HashData struct {
	Hash       string
	Metadata   map[string]any
	Base64File string
}

// ErrorInfo describes why a hash call failed.
type ErrorInfo struct {
	Message string
	Status  int
	Code    string
}

// Result is the uniform outcome of one hash call. Timestamp, File, Filename
// and FileType are populated on both variants; Data is set only when Success
// is true and Error only when it is false.
//
// FileBytes holds the raw file content: on success the server's base64 echo
// decoded (else the locally materialized bytes), on failure the server echo
// first, else the local bytes, else nil.
type Result struct {
	Success   bool
	Timestamp string
	File      *FileRef
	Filename  string
	FileType  string
	FileBytes []byte
	Data      *HashData
	Error     *ErrorInfo
}
