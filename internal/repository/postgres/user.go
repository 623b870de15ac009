package postgres

import (
	"context"
	"database/sql"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (id, name, email, phone, avatar_url, roles, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	u.CreatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.AvatarURL, pq.Array(roleStrings(u.Roles)), u.PasswordHash, u.CreatedOn)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.UserProfile, error) {
	u := &domain.UserProfile{}
	var roles []string
	query := `SELECT id, name, email, phone, avatar_url, roles, password_hash, created_on FROM user_profiles ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.AvatarURL, pq.Array(&roles), &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		u.Roles = append(u.Roles, domain.UserRole(role))
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.UserProfile) error {
	query := `UPDATE user_profiles SET name=$1, email=$2, phone=$3, avatar_url=$4, roles=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Phone, u.AvatarURL, pq.Array(roleStrings(u.Roles)), u.ID)
	return err
}

func roleStrings(roles []domain.UserRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
