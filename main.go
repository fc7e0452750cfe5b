package main

import (
	"easemytrip-planner/db"
	"easemytrip-planner/externals"
	"easemytrip-planner/mockservers"
	"flag"
	"github.com/joho/godotenv"
	"log"
	"os"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// seed reference data on a fresh database
	err = db.SeedSampleData()
	if err != nil {
		log.Fatalf("Error seeding sample data: %v", err)
	}

	// init apis
	externals.InitGeoapifyApi()
	externals.InitFoursquareApi()
	externals.InitUnsplashApi()
	externals.InitGeminiApi()
	externals.InitStayApi()
	externals.InitCurrencyApi()

	// start mock servers in new go routines
	go mockservers.StartStayApiServer()
	go mockservers.StartCurrencyApiServer()

	// initialize firebase
	if testMode == "real" {
		externals.InitializeFirebase(testMode)
	}

	// setup routes
	SetupRoutes(*port)
}
