package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"guardops-backend/internal/auth"
	"guardops-backend/internal/config"
	"guardops-backend/internal/database"
	"guardops-backend/internal/database/models"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/roster"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed"

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Phone    string `yaml:"phone,omitempty"`
	Role     string `yaml:"role"`
	IsActive bool   `yaml:"is_active"`
}

type ShiftData struct {
	ID        uint   `yaml:"id"`
	Name      string `yaml:"name"`
	Code      string `yaml:"code"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Color     string `yaml:"color,omitempty"`
	IsActive  bool   `yaml:"is_active"`
}

type PatternData struct {
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	PersonilCount int     `yaml:"personil_count"`
	IsDefault     bool    `yaml:"is_default"`
	Grid          [][]int `yaml:"grid"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type PatternsFile struct {
	Patterns []PatternData `yaml:"patterns"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding the seed YAML files")
	tokenFor := flag.String("token-for", "", "print a bearer token for this username after loading")
	flag.Parse()

	log.Println("Loading initial roster data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, *dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if *tokenFor != "" {
		token, err := issueToken(db, cfg, *tokenFor)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users UsersFile
	if err := loadYAML(dataDir, "users", &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var shifts ShiftsFile
	if err := loadYAML(dataDir, "shifts", &shifts); err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	var patterns PatternsFile
	if err := loadYAML(dataDir, "patterns", &patterns); err != nil {
		return fmt.Errorf("failed to load patterns: %w", err)
	}

	// Shifts first: pattern codes refer to their IDs
	shiftRepo := repository.NewShiftRepository(db)
	shiftCreated := 0
	for _, shiftData := range shifts.Shifts {
		created, err := createShift(shiftRepo, shiftData)
		if err != nil {
			return fmt.Errorf("failed to create shift %s: %w", shiftData.Code, err)
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("Shifts: %d created, %d total", shiftCreated, len(shifts.Shifts))

	userCreated := 0
	for _, userData := range users.Users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users.Users))

	patternCreated := 0
	for _, patternData := range patterns.Patterns {
		created, err := createPattern(db, patternData)
		if err != nil {
			return fmt.Errorf("failed to create pattern %s: %w", patternData.Name, err)
		}
		if created {
			patternCreated++
		}
	}
	log.Printf("Patterns: %d created, %d total", patternCreated, len(patterns.Patterns))

	return nil
}

// loadYAML merges every .yaml file under dataDir whose path contains kind into target
func loadYAML(dataDir, kind string, target interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, target)
	})
}

func createShift(repo *repository.ShiftRepository, shiftData ShiftData) (bool, error) {
	if shiftData.ID < 1 || shiftData.ID > roster.MaxShiftCode {
		return false, fmt.Errorf("shift id %d is not a pattern code", shiftData.ID)
	}

	_, err := repo.GetByID(shiftData.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query shift: %w", err)
	}

	shift := &models.Shift{
		ID:        shiftData.ID,
		Name:      shiftData.Name,
		Code:      shiftData.Code,
		StartTime: shiftData.StartTime,
		EndTime:   shiftData.EndTime,
		Color:     shiftData.Color,
		IsActive:  shiftData.IsActive,
	}
	if err := repo.Create(shift); err != nil {
		return false, err
	}
	return true, nil
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	var user models.User
	err := db.Where("username = ?", userData.Username).First(&user).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", userData.Role)
	}

	user = models.User{
		BaseModel: models.BaseModel{CreatedBy: seedActor},
		Username:  userData.Username,
		FullName:  userData.FullName,
		Phone:     userData.Phone,
		Role:      role,
		IsActive:  userData.IsActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

func createPattern(db *gorm.DB, patternData PatternData) (bool, error) {
	var pattern models.Pattern
	err := db.Where("name = ? AND personil_count = ?", patternData.Name, patternData.PersonilCount).First(&pattern).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query pattern: %w", err)
	}

	result := roster.ValidateGrid(patternData.Grid, patternData.PersonilCount)
	if !result.Valid {
		return false, fmt.Errorf("invalid pattern: %s", strings.Join(result.Errors, "; "))
	}

	pattern = models.Pattern{
		BaseModel:     models.BaseModel{CreatedBy: seedActor},
		Name:          patternData.Name,
		Description:   patternData.Description,
		PersonilCount: patternData.PersonilCount,
		IsDefault:     patternData.IsDefault,
	}
	if err := pattern.SetGrid(patternData.Grid); err != nil {
		return false, err
	}

	// Goes through the repository so a new default demotes the previous one
	if err := repository.NewPatternRepository(db).Create(&pattern); err != nil {
		return false, err
	}
	return true, nil
}

func issueToken(db *gorm.DB, cfg *config.Config, username string) (string, error) {
	user, err := repository.NewUserRepository(db).GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("failed to find user %s: %w", username, err)
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    auth.DefaultIssuer,
		TokenTTL:  24 * time.Hour,
	})
	if err != nil {
		return "", err
	}
	return authService.GenerateJWT(user)
}
