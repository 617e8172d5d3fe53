package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/infrastructure/config"
	mongodb "github.com/stockroom/inventory-api/internal/infrastructure/db/mongo"
	"github.com/stockroom/inventory-api/pkg/logger"
)

const (
	adminName  = "Admin1"
	adminEmail = "admin1@example.com"

	minPasswordLen = 12
	maxPasswordLen = 64
)

// createadmin seeds the initial administrator account. It is idempotent: when
// the admin user already exists the command exits successfully without
// touching it.
func main() {
	password := flag.String("password", "", "password for the admin account")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if err := validatePassword(*password); err != nil {
		log.Error().Err(err).Msg("invalid password")
		os.Exit(1)
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongodb.Disconnect(context.Background(), client)
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	admin := &domain.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleAdmin},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := users.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Info().Str("email", adminEmail).Msg("admin user already exists")
			return
		}
		log.Fatal().Err(err).Msg("admin user creation failed")
	}

	log.Info().Str("email", adminEmail).Str("id", created.ID).Msg("admin user created")
}

// validatePassword enforces the admin password policy: 12-64 characters with
// at least one uppercase letter and one digit.
func validatePassword(pw string) error {
	if len(pw) < minPasswordLen || len(pw) > maxPasswordLen {
		return fmt.Errorf("password must be between %d and %d characters", minPasswordLen, maxPasswordLen)
	}
	var hasUpper, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	return nil
}
