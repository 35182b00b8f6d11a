package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/apperr"
	"rentacar/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// UpdateUserParams carries the optional fields of a partial user update.
// Nil fields keep their current value (COALESCE in SQL).
type UpdateUserParams struct {
	Name         *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Role         *string
}

type UserRepository interface {
	Create(u *db.User) error
	GetByEmail(email string) (*db.User, error)
	GetByID(id int) (*db.User, error)
	List() ([]db.User, error)
	Update(id int, params UpdateUserParams) (*db.User, error)
	Delete(id int) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(database *sqlx.DB) UserRepository {
	return &userRepository{db: database}
}

func (r *userRepository) Create(u *db.User) error {
	query := `
		INSERT INTO users (name, email, password, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(query, u.Name, u.Email, u.PasswordHash, u.Phone, u.Role).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return apperr.New(apperr.KindConflict, "email already exists")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.db.Get(&u, `SELECT id, name, email, password, phone, role FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByID(id int) (*db.User, error) {
	var u db.User
	err := r.db.Get(&u, `SELECT id, name, email, password, phone, role FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return &u, nil
}

func (r *userRepository) List() ([]db.User, error) {
	var users []db.User
	err := r.db.Select(&users, `SELECT id, name, email, password, phone, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Update(id int, params UpdateUserParams) (*db.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    phone = COALESCE($3, phone),
		    password = COALESCE($4, password),
		    role = COALESCE($5, role)
		WHERE id = $6
		RETURNING id, name, email, password, phone, role`
	var u db.User
	err := r.db.QueryRowx(query, params.Name, params.Email, params.Phone, params.PasswordHash, params.Role, id).StructScan(&u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, apperr.New(apperr.KindConflict, "email already exists")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}
