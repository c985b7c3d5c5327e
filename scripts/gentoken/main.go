// generates a JWT for the seeded admin account, for exercising
// authenticated endpoints during development.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/licitgov/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	userRepo := users.NewRepository(dbPool)

	admin, err := userRepo.FindByEmail(ctx, users.AdminEmail)
	if err != nil {
		log.Fatalf("Failed to find admin account: %v", err)
	}

	token, err := auth.GenerateJWT(admin.ID, admin.Email, true)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
