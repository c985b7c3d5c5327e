package users

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Organization,
		&user.Active,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// finds a user by email, matched case-insensitively
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.db.QueryRow(ctx, queryFindByEmail, normalized))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// creates a user account, rejecting emails already registered
func (r *Repository) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := r.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role != RoleAdmin {
		role = RoleUser
	}

	return scanUser(r.db.QueryRow(
		ctx,
		queryCreate,
		req.Name,
		email,
		role,
		req.Organization,
		string(hash),
	))
}

// lists all users, newest first
func (r *Repository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, user)
	}

	return list, rows.Err()
}

// flips a user's active flag. Admin accounts are never deactivated.
func (r *Repository) ToggleActive(ctx context.Context, userID string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryToggleActive, userID))

	if errors.Is(err, ErrNotFound) {
		// admin accounts fall through the WHERE clause unchanged
		return r.FindByID(ctx, userID)
	}

	return user, err
}

// deletes a user. The primary admin account cannot be removed.
func (r *Repository) Delete(ctx context.Context, userID string) error {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Email == AdminEmail {
		return ErrProtectedAdmin
	}

	_, err = r.db.Exec(ctx, queryDelete, userID)
	return err
}

// counts all users and the active subset
func (r *Repository) Count(ctx context.Context) (total int, active int, err error) {
	if err = r.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return 0, 0, err
	}

	if err = r.db.QueryRow(ctx, queryCountActive).Scan(&active); err != nil {
		return 0, 0, err
	}

	return total, active, nil
}

// EnsureAdmin seeds the primary admin account, restoring its password,
// role, and active flag on every boot.
func (r *Repository) EnsureAdmin(ctx context.Context, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(
		ctx,
		queryEnsureAdmin,
		"Super Administrador",
		AdminEmail,
		"LicitGov HQ",
		string(hash),
	))
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name string,
) (*User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	return scanUser(r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		name,
		normalized,
		"",
		provider,
		providerID,
	))
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(candidate)))
	return err == nil
}
