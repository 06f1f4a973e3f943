package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-catalog-service/config"
	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
)

// Seeds the roles registration depends on. Idempotent.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, name := range []string{entity.RoleUser, entity.RolePrefix + "ADMIN"} {
		var id int64
		err := db.QueryRow(`
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&id)
		if err != nil {
			log.Fatalf("failed to upsert role %s: %v", name, err)
		}
		fmt.Printf("role ensured: id=%d name=%s\n", id, name)
	}
}
