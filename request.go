package hashrelay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/filehash-labs/hashrelay/types"
	"github.com/filehash-labs/hashrelay/vars"
)

// callOutcome is the tagged result of one POST to the hashing service.
// Exactly one field is set: env for any response that decodes into the
// standard envelope, apiErr for a non-2xx response with an unrecognized
// body, netErr for everything else (network failures, unreadable bodies,
// a 2xx response that is not an envelope).
type callOutcome struct {
	env    *types.Envelope
	apiErr *types.APIError
	netErr error
}

// post builds the multipart body and performs the request. The file part is
// always present; the metadata part only when metadata was supplied.
func (c *Client) post(filename, contentType string, data []byte, metadata map[string]any) callOutcome {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return callOutcome{netErr: fmt.Errorf("creating file part: %w", err)}
	}
	if _, err := part.Write(data); err != nil {
		return callOutcome{netErr: fmt.Errorf("writing file part: %w", err)}
	}

	if metadata != nil {
		metaJson, err := json.Marshal(metadata)
		if err != nil {
			return callOutcome{netErr: fmt.Errorf("marshalling metadata: %w", err)}
		}
		if err := writer.WriteField("metadata", string(metaJson)); err != nil {
			return callOutcome{netErr: fmt.Errorf("writing metadata field: %w", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return callOutcome{netErr: fmt.Errorf("closing form writer: %w", err)}
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Endpoint+vars.HASH_FILE_ROUTE, &buf)
	if err != nil {
		return callOutcome{netErr: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return callOutcome{netErr: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return callOutcome{netErr: err}
	}

	var env types.Envelope
	if err := json.Unmarshal(body, &env); err == nil && envelopeValid(&env) {
		if !env.Success {
			// Fall back to the transport's own status and message when the
			// failure body omits them.
			if env.Status == 0 {
				if resp.StatusCode < 200 || resp.StatusCode >= 300 {
					env.Status = resp.StatusCode
				} else {
					env.Status = http.StatusInternalServerError
				}
			}
			if env.Message == "" {
				env.Message = http.StatusText(env.Status)
			}
		}
		return callOutcome{env: &env}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return callOutcome{apiErr: &types.APIError{StatusCode: resp.StatusCode, Message: msg}}
	}

	return callOutcome{netErr: fmt.Errorf("unexpected response from hashing service (status %d)", resp.StatusCode)}
}

// envelopeValid reports whether a decoded body actually looks like the
// service envelope rather than an arbitrary JSON document that happened
// to unmarshal into zero values.
func envelopeValid(env *types.Envelope) bool {
	if env.Success {
		return env.Data != nil && env.Data.Hash != ""
	}
	return env.Message != "" || env.Code != "" || env.Status != 0
}
