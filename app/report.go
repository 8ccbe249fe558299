package main

import (
	"fmt"

	"github.com/filehash-labs/hashrelay/worker"
)

// runReport prints the journaled results for a job, newest first.
func runReport(jobName string) error {
	if err := worker.Connect(); err != nil {
		return err
	}

	records, err := worker.FetchRecords(jobName)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No journaled results for job", jobName)
		return nil
	}

	failedRecords, err := worker.FetchFailed(jobName)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.Succeeded {
			fmt.Printf("✅ %s → %s (blake3 %s)\n", record.Filename, record.Hash, record.LocalDigest)
			continue
		}

		code := ""
		if record.Code != nil {
			code = " " + *record.Code
		}
		message := ""
		if record.Message != nil {
			message = ": " + *record.Message
		}
		fmt.Printf("❌ %s → %d%s%s\n", record.Filename, record.Status, code, message)
	}

	fmt.Printf("✨ %d results, %d failed\n", len(records), len(failedRecords))
	return nil
}
