package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"moodlog/database"
	"moodlog/internal/config"
	"moodlog/internal/store"
	"moodlog/internal/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// Try loading from the project root when run from cmd/seed/.
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	days := seedCmd.Int("days", utils.DefaultSeedDays, "Number of trailing days to backfill")
	perDay := seedCmd.Int("per-day", utils.DefaultSeedPerDayMax, "Maximum activities per day")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	activityStore, err := connect()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer activityStore.Close()

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedActivities(activityStore, *days, *perDay); err != nil {
			log.Fatalf("Error seeding activities: %v", err)
		}
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := utils.ClearActivities(activityStore); err != nil {
			log.Fatalf("Error clearing activities: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func connect() (store.ActivityStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	activityStore, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := activityStore.Initialize(); err != nil {
		return nil, err
	}
	return activityStore, nil
}

func printHelp() {
	fmt.Println("Usage: seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed   Backfill random catalog activities (-days, -per-day)")
	fmt.Println("  clear  Delete all stored activities")
}
