package main

import (
	"log"

	"github.com/joho/godotenv"

	"go-hena-store/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunWorker(); err != nil {
		log.Fatal(err)
	}
}
