package main

import (
	"log"
	"net/http"
	"os"

	"summitgen/internal/server"
	"summitgen/internal/store"
)

func main() {
	var db store.Store
	var err error

	if os.Getenv("DB_TYPE") == "postgres" {
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			connStr = "host=localhost user=summitgen password=summitgen dbname=summitgen sslmode=disable"
		}
		db, err = store.NewPostgresStore(connStr)
		log.Println("Using PostgreSQL level store")
	} else {
		dir := os.Getenv("LEVEL_DIR")
		if dir == "" {
			dir = "levels"
		}
		db, err = store.NewFileStore(dir)
		log.Println("Using file level store")
	}
	if err != nil {
		log.Fatalf("initialize level store: %v", err)
	}
	defer db.Close()

	http.Handle("/ws", server.NewLevelHandler(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Level server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
