package user

import (
	"database/sql"
	"fmt"
)

type sqlite3UserRepository struct {
	db *sql.DB
}

func NewSQLite3UserRepository(db *sql.DB) UserRepository {
	return &sqlite3UserRepository{db: db}
}

func (r *sqlite3UserRepository) CreateUser(user *User, passwordHash string) error {
	_, err := r.db.Exec(
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		user.ID, user.Email, passwordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlite3UserRepository) GetUserByID(id string) (*User, error) {
	var user User
	err := r.db.QueryRow(
		"SELECT id, email, created_at FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Email, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

func (r *sqlite3UserRepository) GetUserByEmail(email string) (*User, string, error) {
	var user User
	var passwordHash string
	err := r.db.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?",
		email,
	).Scan(&user.ID, &user.Email, &passwordHash, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, passwordHash, nil
}
