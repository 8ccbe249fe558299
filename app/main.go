package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if len(os.Args) > 2 && os.Args[1] == "report" {
		if err := runReport(os.Args[2]); err != nil {
			fmt.Println("❌ Failure fetching report:", err)
			os.Exit(1)
		}
		return
	}

	configFile := "hashrelay.config.json"
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	job, jobErr := LoadJob(configFile)
	if jobErr != nil {
		fmt.Println("❌ Failure loading config:", jobErr)
		os.Exit(1)
	}

	if runErr := job.Run(); runErr != nil {
		fmt.Println("❌ Job failed:", runErr)
		os.Exit(1)
	}
}
