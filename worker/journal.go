package worker

import (
	"gorm.io/gorm/clause"

	"github.com/filehash-labs/hashrelay/vars"
)

// BulkAddRecords journals a batch of hash results.
func BulkAddRecords(records []Record) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(records, vars.JOURNAL_BATCH_SIZE).Error

	return err
}

// FetchRecords returns every journaled result for a job, newest first.
func FetchRecords(jobName string) ([]Record, error) {
	var records []Record
	if err := db.Where("job_name = ?", jobName).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// FetchFailed returns the failed results for a job, newest first.
func FetchFailed(jobName string) ([]Record, error) {
	var records []Record
	if err := db.Where("job_name = ? AND succeeded = ?", jobName, false).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
