package worker

import (
	"errors"
	"fmt"
	"os"

	"github.com/kofj/gorm-driver-d1/gormd1"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/filehash-labs/hashrelay/vars"
)

var db *gorm.DB

// Connect opens the Cloudflare D1 journal database from the CF_*
// environment variables and migrates the schema. The rest of the package
// is usable only after Connect succeeds.
func Connect() error {
	accountId := os.Getenv(vars.ENV_CF_ACCOUNT_ID)
	apiToken := os.Getenv(vars.ENV_CF_API_TOKEN)
	databaseId := os.Getenv(vars.ENV_CF_DATABASE_ID)

	if accountId == "" || apiToken == "" || databaseId == "" {
		return errors.New("missing either CF_ACCOUNT_ID, CF_API_TOKEN or CF_DATABASE_ID environment variables")
	}

	d1Dialect := gormd1.Open(fmt.Sprintf("d1://%s:%s@%s", accountId, apiToken, databaseId))
	conn, err := gorm.Open(d1Dialect, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("connecting to journal database: %w", err)
	}

	if err := conn.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrating journal schema: %w", err)
	}

	db = conn
	return nil
}

// Enabled reports whether the journal connection has been established.
func Enabled() bool {
	return db != nil
}
