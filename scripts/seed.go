package main

import (
	"fmt"
	"log"

	"gallery_store/internal/config"
	"gallery_store/internal/database"
	"gallery_store/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Artist profile (singleton)
	var profileCount int64
	db.Model(&models.ArtistProfile{}).Count(&profileCount)
	if profileCount == 0 {
		profile := models.ArtistProfile{
			Name:          "Kari Yamada",
			Bio:           "Contemporary painter working in oil and mixed media.",
			Email:         "kari@example.com",
			StudioAddress: "Setagaya, Tokyo",
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Fatal("Failed to seed artist profile:", err)
		}
		fmt.Println("Created artist profile")
	}

	// About page content
	var pageCount int64
	db.Model(&models.PageContent{}).Where("page_key = ?", "about").Count(&pageCount)
	if pageCount == 0 {
		page := models.PageContent{
			PageKey:         "about",
			Title:           "About the Artist",
			Content:         "Each piece in this gallery is a one-of-a-kind original.",
			MetaDescription: "About the artist and the studio.",
		}
		if err := db.Create(&page).Error; err != nil {
			log.Fatal("Failed to seed page content:", err)
		}
		fmt.Println("Created about page")
	}

	// Sample artworks
	var artworkCount int64
	db.Model(&models.Artwork{}).Count(&artworkCount)
	if artworkCount == 0 {
		artworks := []models.Artwork{
			{
				Title:       "Morning Light",
				Slug:        "morning-light",
				Description: "Oil on canvas, soft dawn palette.",
				Price:       85000,
				Medium:      "Oil on canvas",
				YearCreated: 2024,
				Category:    "painting",
				IsAvailable: true,
				IsFeatured:  true,
			},
			{
				Title:       "Harbor at Dusk",
				Slug:        "harbor-at-dusk",
				Description: "Mixed media on panel.",
				Price:       95000,
				Medium:      "Mixed media",
				YearCreated: 2023,
				Category:    "painting",
				IsAvailable: true,
			},
		}
		if err := db.Create(&artworks).Error; err != nil {
			log.Fatal("Failed to seed artworks:", err)
		}
		fmt.Printf("Created %d sample artworks\n", len(artworks))
	}

	// Admin user
	var adminCount int64
	db.Model(&models.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&adminCount)
	if adminCount == 0 {
		hash := cfg.AdminPasswordHash
		if hash == "" {
			// Development fallback; set ADMIN_PASSWORD_HASH in production.
			generated, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatal("Failed to hash default password:", err)
			}
			hash = string(generated)
			fmt.Println("WARNING: admin user created with default password 'changeme'")
		}
		admin := models.AdminUser{Email: cfg.AdminEmail, PasswordHash: hash}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("Failed to seed admin user:", err)
		}
		fmt.Println("Created admin user", cfg.AdminEmail)
	}

	fmt.Println("Seeding complete")
}
