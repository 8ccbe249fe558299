package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/filehash-labs/hashrelay"
	"github.com/filehash-labs/hashrelay/types"
	"github.com/filehash-labs/hashrelay/utils"
	"github.com/filehash-labs/hashrelay/vars"
	"github.com/filehash-labs/hashrelay/worker"
)

// hashTask is one file resolved from a glob pattern.
type hashTask struct {
	path     string
	metadata map[string]any
}

// Run hashes every file matched by the job's patterns and, when the D1
// environment is configured, journals the results. A journal failure is a
// warning; a hash failure makes the whole run fail after all files were
// attempted.
func (j *Job) Run() error {
	client, err := hashrelay.New(hashrelay.Config{
		APIKey:   os.Getenv(vars.ENV_API_KEY),
		Endpoint: j.Endpoint,
		Timeout:  time.Duration(j.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}

	tasks, err := j.expandEntries()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return errors.New("no files matched any files__hash pattern")
	}

	if os.Getenv(vars.ENV_CF_DATABASE_ID) != "" {
		if dbErr := worker.Connect(); dbErr != nil {
			fmt.Println("⚠️ Journal disabled:", dbErr)
		}
	}
	journaling := worker.Enabled()

	runId := fmt.Sprintf("%s-%d", j.JobName, time.Now().Unix())
	start := time.Now()
	failed := 0
	var records []worker.Record

	for _, task := range tasks {
		result := client.HashFile(types.FilePath(task.path), task.metadata)

		if result.Success {
			fmt.Printf("✅ %s → %s\n", result.Filename, result.Data.Hash)
		} else {
			failed++
			fmt.Printf("❌ %s → %d %s: %s\n", result.Filename, result.Error.Status, result.Error.Code, result.Error.Message)
		}

		if journaling {
			records = append(records, buildRecord(runId, j.JobName, task, result))
		}
	}

	if journaling && len(records) > 0 {
		if dbErr := worker.BulkAddRecords(records); dbErr != nil {
			fmt.Println("⚠️ Failure journaling results:", dbErr)
		}
	}

	fmt.Printf("✨ Hashed %d/%d files (%.2f sec)\n", len(tasks)-failed, len(tasks), time.Since(start).Seconds())
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(tasks))
	}
	return nil
}

// expandEntries resolves every pattern to regular files, deduplicating
// paths that match more than one pattern (first entry's metadata wins).
func (j *Job) expandEntries() ([]hashTask, error) {
	var tasks []hashTask
	seen := make(map[string]bool)

	for i, entry := range j.FilesHash {
		matches, err := doublestar.FilepathGlob(entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("files__hash[%d]: bad pattern %q: %w", i, entry.Pattern, err)
		}

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || info.IsDir() {
				continue
			}
			if seen[match] {
				continue
			}
			seen[match] = true
			tasks = append(tasks, hashTask{path: match, metadata: entry.Metadata})
		}
	}

	return tasks, nil
}

// buildRecord converts one hash result into a journal row, including a
// local BLAKE3 digest of whatever bytes the call ended up carrying.
func buildRecord(runId, jobName string, task hashTask, result types.Result) worker.Record {
	record := worker.Record{
		RunID:       runId,
		Path:        filepath.ToSlash(task.path),
		JobName:     jobName,
		Filename:    result.Filename,
		ContentType: result.FileType,
		SizeInBytes: int64(len(result.FileBytes)),
		Succeeded:   result.Success,
		Timestamp:   result.Timestamp,
	}

	if len(result.FileBytes) > 0 {
		record.LocalDigest = utils.Digest(result.FileBytes)
	}

	if result.Success {
		record.Hash = result.Data.Hash
	} else {
		record.Status = result.Error.Status
		if result.Error.Code != "" {
			code := result.Error.Code
			record.Code = &code
		}
		message := result.Error.Message
		record.Message = &message
	}

	if task.metadata != nil {
		if metaJson, mrErr := json.Marshal(task.metadata); mrErr == nil {
			metaStr := string(metaJson)
			record.Metadata = &metaStr
		}
	}

	return record
}
