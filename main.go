package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/lifestream-health/donation-backend/internal/auth"
	"github.com/lifestream-health/donation-backend/internal/config"
	"github.com/lifestream-health/donation-backend/internal/contact"
	"github.com/lifestream-health/donation-backend/internal/db"
	"github.com/lifestream-health/donation-backend/internal/donation"
	"github.com/lifestream-health/donation-backend/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := auth.Init(conn); err != nil {
		log.Fatal("Failed to set up accounts schema: ", err)
	}
	if err := donation.Init(conn); err != nil {
		log.Fatal("Failed to set up donations schema: ", err)
	}
	if err := contact.Init(conn); err != nil {
		log.Fatal("Failed to set up contact schema: ", err)
	}

	users := auth.NewGormUserStore(conn)
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TTL())
	authHandler := auth.NewHandler(auth.NewCredentialService(users), tokens)

	donationHandler := donation.NewHandler(
		donation.NewService(donation.NewGormDonationStore(conn), users),
	)

	contactHandler := contact.NewHandler(contact.NewGormMessageStore(conn))

	authn := middleware.Authenticate(tokens)
	authLimit := middleware.RateLimit(rate.Every(time.Second), 10)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/api/auth", authHandler.SetupRoutes(authLimit))
	r.Mount("/api/donations", donationHandler.SetupRoutes(authn))
	r.Mount("/api/contact", contactHandler.SetupRoutes())

	r.Route("/api/user", func(r chi.Router) {
		r.Use(authn)
		r.Get("/profile", authHandler.ProfileHandler)
		r.Put("/profile", authHandler.UpdateProfileHandler)
		r.Get("/donations", donationHandler.ListOwnHandler)
	})

	log.Println("Server listening on port :" + cfg.Port)

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
