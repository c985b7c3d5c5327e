package users

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// primary admin account, reseeded at every boot
const AdminEmail = "admin@licitgov.com"

var (
	ErrNotFound       = errors.New("usuário não encontrado")
	ErrEmailTaken     = errors.New("E-mail já cadastrado no sistema.")
	ErrProtectedAdmin = errors.New("Não é possível deletar o administrador principal do sistema.")
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an account in the system
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	PasswordHash string    `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// contains data for creating a user account
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Organization string `json:"organization" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role"`
}
