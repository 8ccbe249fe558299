package vars

const (
	// Route of the hashing endpoint, appended to the configured base address.
	HASH_FILE_ROUTE = "/hash/file"

	// Default request timeout when the config leaves it unset.
	DEFAULT_TIMEOUT_MS = 5_000

	// Timestamp layout matching the service's millisecond ISO-8601 format.
	TIMESTAMP_LAYOUT = "2006-01-02T15:04:05.000Z"

	// Machine-readable failure codes produced locally.
	CODE_FILE_READ_ERROR  = "FILE_READ_ERROR"
	CODE_UNEXPECTED_ERROR = "UNEXPECTED_ERROR"

	// CLI limits.
	MAX_HASH_FILES     = 100
	JOURNAL_BATCH_SIZE = 50

	// Environment variable names read by the CLI and the journal.
	ENV_API_KEY        = "HASHRELAY_API_KEY"
	ENV_CF_ACCOUNT_ID  = "CF_ACCOUNT_ID"
	ENV_CF_API_TOKEN   = "CF_API_TOKEN"
	ENV_CF_DATABASE_ID = "CF_DATABASE_ID"
)
