package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/filehash-labs/hashrelay/vars"
)

// HashEntry selects files via a glob pattern and attaches metadata to every
// match.
type HashEntry struct {
	Pattern  string         `json:"pattern"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Job is the top-level CLI configuration.
type Job struct {
	JobName   string      `json:"job_name"`
	Endpoint  string      `json:"endpoint"`
	TimeoutMs int         `json:"timeout_ms,omitempty"`
	FilesHash []HashEntry `json:"files__hash"`
}

// LoadJob reads a JSON file, unmarshals into Job and validates it.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}

	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &job, nil
}

// validate enforces required fields and entry limits.
func (j *Job) validate() error {
	if j.JobName == "" {
		return errors.New("field 'job_name' is required")
	}
	if j.Endpoint == "" {
		return errors.New("field 'endpoint' is required")
	}
	if len(j.FilesHash) == 0 {
		return errors.New("field 'files__hash' must be non-empty")
	}
	if len(j.FilesHash) > vars.MAX_HASH_FILES {
		return fmt.Errorf("files__hash supports a maximum of %d entries in one run", vars.MAX_HASH_FILES)
	}

	for i, entry := range j.FilesHash {
		if entry.Pattern == "" {
			return fmt.Errorf("files__hash[%d]: field 'pattern' is required", i)
		}
	}

	return nil
}
