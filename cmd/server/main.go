package main

import (
	"log"

	"github.com/lazygeek007/connect-four/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
