// Package services holds the application logic between HTTP handlers and
// repositories. Services own the *sql.DB and obtain repositories bound to
// it, or to a transaction, from the repository manager.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/auth"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
}

// NewUserService builds a UserService. A nil hasher stores passwords as
// given and matches them verbatim on login.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
	}
}

// Save registers a user. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Save(ctx context.Context, user *models.User) (*models.User, error) {
	u := *user

	if s.hasher != nil {
		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		u.Password = hash
	}

	saved, err := s.repomanager.Users(s.db).Save(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return saved, nil
}

// FindByEmailAndPassword returns the user with these credentials or
// common.ErrorNotFound.
func (s *UserService) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if s.hasher == nil {
		return repo.FindByEmailAndPassword(ctx, email, password)
	}

	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Matches(user.Password, password) {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).FindAll(ctx)
}

func (s *UserService) DeleteByID(ctx context.Context, id int) (bool, error) {
	return s.repomanager.Users(s.db).DeleteByID(ctx, id)
}
