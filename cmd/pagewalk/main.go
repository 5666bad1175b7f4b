package main

import "github.com/joho/godotenv"

func main() {
	// A .env file may carry defaults such as PAGEWALK_RECORD_DB.
	_ = godotenv.Load()

	Execute()
}
