package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, name, email, phone, password_hash, role, department, designation,
	joining_date, leave_balance, is_active, profile_image, address,
	emergency_contact_name, emergency_contact_phone, emergency_contact_relation,
	created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &role, &u.Department, &u.Designation,
		&u.JoiningDate, &u.LeaveBalance, &u.IsActive, &u.ProfileImage, &u.Address,
		&u.EmergencyContact.Name, &u.EmergencyContact.Phone, &u.EmergencyContact.Relation,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.LeaveBalance == nil {
		u.LeaveBalance = map[string]float64{}
	}

	query := `
		INSERT INTO users (
			id, name, email, phone, password_hash, role, department, designation,
			joining_date, leave_balance, is_active, profile_image, address,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relation
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, string(u.Role), u.Department, u.Designation,
		u.JoiningDate, u.LeaveBalance, u.IsActive, u.ProfileImage, u.Address,
		u.EmergencyContact.Name, u.EmergencyContact.Phone, u.EmergencyContact.Relation,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// ListByRole implements user.UserRepository.
func (r *userRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name = $2, phone = $3, department = $4, designation = $5,
			leave_balance = $6, is_active = $7, profile_image = $8, address = $9,
			emergency_contact_name = $10, emergency_contact_phone = $11,
			emergency_contact_relation = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Name, u.Phone, u.Department, u.Designation,
		u.LeaveBalance, u.IsActive, u.ProfileImage, u.Address,
		u.EmergencyContact.Name, u.EmergencyContact.Phone, u.EmergencyContact.Relation,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// DecrementLeaveBalance implements user.UserRepository. The WHERE clause
// carries the sufficiency guard, so a concurrent approval that would
// overdraw the balance matches zero rows instead.
func (r *userRepository) DecrementLeaveBalance(ctx context.Context, id, code string, days float64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET leave_balance = jsonb_set(
			leave_balance,
			ARRAY[$2],
			to_jsonb((leave_balance->>$2)::numeric - $3)
		),
		updated_at = NOW()
		WHERE id = $1
		  AND leave_balance ? $2
		  AND (leave_balance->>$2)::numeric >= $3
	`

	tag, err := q.Exec(ctx, query, id, code, days)
	if err != nil {
		return false, fmt.Errorf("failed to decrement leave balance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete implements user.UserRepository. Related attendance and leave
// rows are removed by the caller inside the same transaction.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
