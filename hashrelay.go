// Package hashrelay is a client for the HashRelay file-hashing API. It
// uploads a file plus optional metadata in one multipart POST and folds
// every possible outcome into a single Result value: callers branch on
// Result.Success instead of handling errors.
package hashrelay

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/filehash-labs/hashrelay/types"
	"github.com/filehash-labs/hashrelay/vars"
)

// Client talks to one HashRelay endpoint. It is immutable after New and
// safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// New validates cfg and returns a client bound to a single HTTP transport
// with the configured timeout. It performs no network I/O; an invalid
// config fails immediately with a *types.ConfigError.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// HashFile uploads ref and the optional metadata to the hashing service.
// It never returns an error: read failures, transport failures and server
// failure payloads all come back as a Result with Success false. The
// result always carries a timestamp, the original reference and the
// resolved filename and content type.
func (c *Client) HashFile(ref types.FileRef, metadata map[string]any) types.Result {
	filename, contentType := resolveFileInfo(ref)

	res := types.Result{
		File:     &ref,
		Filename: filename,
		FileType: contentType,
	}

	data, err := materialize(ref)
	if err != nil {
		res.Timestamp = nowTimestamp()
		res.Error = &types.ErrorInfo{
			Message: fmt.Sprintf("failed to read file: %v", err),
			Status:  http.StatusBadRequest,
			Code:    vars.CODE_FILE_READ_ERROR,
		}
		return res
	}
	res.FileBytes = data

	out := c.post(filename, contentType, data, metadata)
	switch {
	case out.env != nil && out.env.Success:
		env := out.env
		res.Success = true
		res.Timestamp = env.Timestamp
		res.Data = &types.HashData{
			Hash:       env.Data.Hash,
			Metadata:   env.Data.Metadata,
			Base64File: env.Data.File,
		}
		if env.Data.Filename != "" {
			res.Filename = env.Data.Filename
		}
		if env.Data.FileType != "" {
			res.FileType = env.Data.FileType
		}
		if decoded, ok := decodeEcho(env.Data); ok {
			res.FileBytes = decoded
		}

	case out.env != nil:
		env := out.env
		res.Timestamp = env.Timestamp
		res.Error = &types.ErrorInfo{
			Message: env.Message,
			Status:  env.Status,
			Code:    env.Code,
		}
		// Server-echoed payload wins over the local buffer.
		if decoded, ok := decodeEcho(env.Data); ok {
			res.FileBytes = decoded
		}

	case out.apiErr != nil:
		res.Error = &types.ErrorInfo{
			Message: out.apiErr.Message,
			Status:  out.apiErr.StatusCode,
		}

	default:
		msg := "unexpected error during hash request"
		if out.netErr != nil {
			msg = out.netErr.Error()
		}
		res.Error = &types.ErrorInfo{
			Message: msg,
			Status:  http.StatusInternalServerError,
			Code:    vars.CODE_UNEXPECTED_ERROR,
		}
	}

	if res.Timestamp == "" {
		res.Timestamp = nowTimestamp()
	}
	return res
}

// decodeEcho base64-decodes the server's file echo, if any.
func decodeEcho(data *types.EnvelopeData) ([]byte, bool) {
	if data == nil || data.File == "" {
		return nil, false
	}
	decoded, err := base64.StdEncoding.DecodeString(data.File)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

func nowTimestamp() string {
	return time.Now().UTC().Format(vars.TIMESTAMP_LAYOUT)
}
