package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/vmanchev/payroll-advanced/internal/app"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	year := flag.Int("year", 0, "year to generate the schedule for (defaults to the current year)")
	file := flag.String("file", "", "destination file for the CSV schedule (defaults to payroll.csv)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot export")
	configPath := flag.String("config", "./config/application.yaml", "path to the configuration file")
	flag.Parse()

	if *serve {
		application, err := app.NewApplication(*configPath)
		if err != nil {
			log.Fatalf("failed to initialize application: %v", err)
		}
		if err := application.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := app.ExportSchedule(*configPath, *year, *file); err != nil {
		log.Fatal(err)
	}
}
