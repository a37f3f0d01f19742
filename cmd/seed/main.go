package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	authadapters "notes_app/internal/feature/auth/adapters"
	"notes_app/internal/feature/auth/domain/entity"
	authusecase "notes_app/internal/feature/auth/usecase"
	infradb "notes_app/internal/platform/db"
)

// Seeds the demo user. The password is hashed before insert; a plaintext
// credential never reaches the users table.
func main() {
	db := infradb.OpenDB()
	users := authadapters.NewUserGorm(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := users.FindByUsername(ctx, "johndoe"); err == nil {
		log.Println("seed user already present")
		return
	} else if !errors.Is(err, authusecase.ErrUserNotFound) {
		log.Fatal("failed to probe seed user:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash seed password:", err)
	}

	user := &entity.User{
		Username:  "johndoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "example@example.com",
		Password:  string(hashed),
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatal("failed to create seed user:", err)
	}
	log.Println("seed ok")
}
