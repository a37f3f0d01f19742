package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"notes_app/internal/app/di"
	"notes_app/internal/app/router"
	authadapters "notes_app/internal/feature/auth/adapters"
	authhandler "notes_app/internal/feature/auth/transport/handler"
	authusecase "notes_app/internal/feature/auth/usecase"
	notesadapters "notes_app/internal/feature/notes/adapters"
	noteshandler "notes_app/internal/feature/notes/transport/handler"
	notesusecase "notes_app/internal/feature/notes/usecase"
	infradb "notes_app/internal/platform/db"
	infraredis "notes_app/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis (optional; sessions fall back to the relational table)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions will use the database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	noteRepo := notesadapters.NewNoteGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	notesUC := notesusecase.NewNotesUsecase(noteRepo)

	// Handler
	cookie := authhandler.CookieConfig{
		Domain: os.Getenv("COOKIE_DOMAIN"),
		Secure: os.Getenv("COOKIE_SECURE") == "true",
	}
	authH := authhandler.NewAuthHandler(authUC, cookie)
	notesH := noteshandler.NewNotesHandler(notesUC)

	r := router.NewRouter(authH, notesH, sessionRepo, "web/templates/*.html")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
