package worker

// Record is one journaled hash operation. RunID plus Path is the natural
// key: re-submitting the same run leaves existing rows untouched.
type Record struct {
	ID          int64  `gorm:"primaryKey"`
	RunID       string `gorm:"uniqueIndex:idx_run_path"`
	Path        string `gorm:"uniqueIndex:idx_run_path"`
	JobName     string `gorm:"index"`
	Filename    string
	ContentType string
	SizeInBytes int64
	LocalDigest string
	Hash        string
	Succeeded   bool
	Status      int
	Code        *string
	Message     *string
	Metadata    *string
	Timestamp   string
}
