// scripts/create_admin.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/polytechlab/attendgate/config"
	"github.com/polytechlab/attendgate/database"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	st := repository.New(db)

	username := "admin"
	password := "1234"
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		password = v
	}

	if _, err := st.Users.ByUsername(username); err == nil {
		fmt.Println("admin user already exists:", username)
		os.Exit(0)
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		Username: username,
		Password: string(hashed),
		Role:     "admin",
		Name:     "Administrator",
	}
	if err := st.Users.Create(&u); err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created:", username)
}
