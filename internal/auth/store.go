package auth

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by a UserStore when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// UserStore is the contract the auth core needs from the persistence layer.
// The gate and the handlers depend on this interface, not on gorm, so tests
// can substitute an in-memory store.
type UserStore interface {
	FindByID(id string) (User, error)
	FindByUsername(username string) (User, error)
	Create(user *User) error
	UpdatePassword(userID, hashedPassword string) error
}

// GormStore is the Postgres-backed UserStore. The pool is injected at
// construction; GormStore never reaches for a global handle.
type GormStore struct {
	conn *gorm.DB
}

func NewGormStore(conn *gorm.DB) *GormStore {
	return &GormStore{conn: conn}
}

func (s *GormStore) FindByID(id string) (User, error) {
	var user User
	err := s.conn.First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return user, err
}

func (s *GormStore) FindByUsername(username string) (User, error) {
	var user User
	err := s.conn.First(&user, "username = ?", NormalizeUsername(username)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return user, err
}

func (s *GormStore) Create(user *User) error {
	return s.conn.Create(user).Error
}

func (s *GormStore) UpdatePassword(userID, hashedPassword string) error {
	return s.conn.Model(&User{}).Where("user_id = ?", userID).
		Update("hashed_password", hashedPassword).Error
}
