package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"unijoblink/internal/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return
	}
	command := args[0]

	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, "migrations"); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
		fmt.Println("migrations applied")
	case "down":
		if err := goose.Down(db, "migrations"); err != nil {
			log.Fatalf("roll back migration: %v", err)
		}
		fmt.Println("migration rolled back")
	case "status":
		if err := goose.Status(db, "migrations"); err != nil {
			log.Fatalf("migration status: %v", err)
		}
	default:
		fmt.Printf("unknown command: %s\n", command)
		flag.Usage()
	}
}

func usage() {
	fmt.Println("usage: migrate [command]")
	fmt.Println("commands:")
	fmt.Println("  up      apply pending migrations")
	fmt.Println("  down    roll back the last migration")
	fmt.Println("  status  show migration status")
}
