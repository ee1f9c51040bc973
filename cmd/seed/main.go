package main

import (
	"flag"
	"log"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
	"github.com/BazaarWorks/BW-Backend/internal/db"
	"github.com/BazaarWorks/BW-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "internal/seeds/data/users.yaml", "seed file to load")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	conn, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := auth.Init(conn); err != nil {
		log.Fatal(err)
	}

	if err := seeds.SeedUsers(conn, *file); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
}
