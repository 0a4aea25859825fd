package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"admissions-crm-backend/internal/config"
	"admissions-crm-backend/internal/database"
	"admissions-crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed YAML schema
type RoleData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AgentData struct {
	FullName    string  `yaml:"full_name"`
	Email       string  `yaml:"email"`
	PhoneNumber string  `yaml:"phone_number,omitempty"`
	RoleName    string  `yaml:"role_name"`
	Weightage   float64 `yaml:"weightage,omitempty"`
}

type SeedData struct {
	Roles  []RoleData  `yaml:"roles"`
	Agents []AgentData `yaml:"agents"`
}

func main() {
	seedPath := flag.String("seed", "scripts/seed_data.yaml", "path to the seed YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	seed, err := readSeedData(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	if err := loadRoles(db, seed.Roles); err != nil {
		log.Fatalf("Failed to load roles: %v", err)
	}
	if err := loadAgents(db, seed.Agents); err != nil {
		log.Fatalf("Failed to load agents: %v", err)
	}

	log.Printf("Seed complete: %d roles, %d agents", len(seed.Roles), len(seed.Agents))
}

func readSeedData(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(seed.Roles) == 0 {
		return nil, fmt.Errorf("seed file %s defines no roles", path)
	}
	return &seed, nil
}

// loadRoles creates each role unless one with the same name exists already
func loadRoles(db *gorm.DB, roles []RoleData) error {
	for _, data := range roles {
		var existing models.Role
		err := db.Where("name = ?", data.Name).First(&existing).Error
		if err == nil {
			log.Printf("Role %q already exists, skipping", data.Name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		role := models.Role{Name: data.Name, Description: data.Description}
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("creating role %q: %w", data.Name, err)
		}
		log.Printf("Created role %q", data.Name)
	}
	return nil
}

// loadAgents creates each agent, resolving its role by name
func loadAgents(db *gorm.DB, agents []AgentData) error {
	for _, data := range agents {
		var existing models.Agent
		err := db.Where("email = ?", data.Email).First(&existing).Error
		if err == nil {
			log.Printf("Agent %q already exists, skipping", data.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var role models.Role
		if err := db.Where("name = ?", data.RoleName).First(&role).Error; err != nil {
			return fmt.Errorf("resolving role %q for agent %q: %w", data.RoleName, data.Email, err)
		}

		weightage := data.Weightage
		if weightage <= 0 {
			weightage = 1
		}

		agent := models.Agent{
			FullName:    data.FullName,
			Email:       data.Email,
			PhoneNumber: data.PhoneNumber,
			RoleID:      role.ID,
			IsAvailable: true,
			Weightage:   weightage,
		}
		if err := db.Create(&agent).Error; err != nil {
			return fmt.Errorf("creating agent %q: %w", data.Email, err)
		}
		log.Printf("Created agent %q with role %q", data.Email, data.RoleName)
	}
	return nil
}
