package main

import (
	"github.com/joho/godotenv"

	"servicebook/internal/app/server"
)

func main() {
	// missing .env is fine; real deployments set env vars directly
	_ = godotenv.Load()
	server.Run()
}
