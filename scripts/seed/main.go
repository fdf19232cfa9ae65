// Loads demo users and courses from a YAML fixture into the database.
//
// Usage: go run ./scripts/seed [-file scripts/seed/seed_data.yaml]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"nura_backend/internal/config"
	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/service"
	"nura_backend/pkg/database"
	"nura_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Courses []struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Content     string   `yaml:"content"`
		Status      string   `yaml:"status"`
		OwnerEmail  string   `yaml:"owner_email"`
		Tags        []string `yaml:"tags"`
	} `yaml:"courses"`
}

func main() {
	file := flag.String("file", "scripts/seed/seed_data.yaml", "path to the seed fixture")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	tagService := service.NewTagService(
		repository.NewTagRepository(db),
		repository.NewCourseRepository(db),
		service.NewAIService(cfg.AI),
	)

	ownerByEmail := make(map[string]uint)

	for _, u := range seed.Users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			ownerByEmail[u.Email] = existing.ID
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.Email, err)
		}

		user := model.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hash),
			Role:     model.UserRole(u.Role),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
		ownerByEmail[u.Email] = user.ID
		log.Printf("Created user %s (%s)", u.Email, u.Role)
	}

	for _, c := range seed.Courses {
		ownerID, ok := ownerByEmail[c.OwnerEmail]
		if !ok {
			log.Fatalf("Course %q references unknown owner %s", c.Title, c.OwnerEmail)
		}

		var count int64
		db.Model(&model.Course{}).Where("title = ? AND owner_id = ?", c.Title, ownerID).Count(&count)
		if count > 0 {
			continue
		}

		course := model.Course{
			Title:       c.Title,
			Description: c.Description,
			Content:     c.Content,
			Status:      model.CourseStatus(c.Status),
			OwnerID:     ownerID,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", c.Title, err)
		}
		if err := tagService.AutoTag(context.Background(), course.ID, course.Title, course.Description, course.Content, c.Tags); err != nil {
			log.Printf("Tagging failed for %q: %v", c.Title, err)
		}
		log.Printf("Created course %q", c.Title)
	}

	log.Println("Seeding complete")
}
