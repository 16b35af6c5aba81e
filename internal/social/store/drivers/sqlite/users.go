package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/upchain/social/internal/social/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, email, password_hash, is_verified,
	otp_code, otp_expires_at, bio, gender, profile_picture,
	is_premium, premium_expires_at, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, is_verified,
			otp_code, otp_expires_at, bio, gender, profile_picture,
			is_premium, premium_expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.IsVerified,
		mapOptionalString(u.OTPCode), mapOptionalTime(u.OTPExpiresAt),
		u.Bio, u.Gender, u.ProfilePicture,
		u.IsPremium, mapOptionalTime(u.PremiumExpiresAt),
		u.CreatedAt.UnixMilli(), u.UpdatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *usersRepo) GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ?`,
		identifier, identifier))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, bio, gender, picture string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET bio = ?, gender = ?, profile_picture = ?, updated_at = ?
		WHERE id = ?
	`, bio, gender, picture, time.Now().UnixMilli(), userID)
	return requireRow(res, err)
}

func (r *usersRepo) SetOTP(ctx context.Context, userID, code string, expiresAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET otp_code = ?, otp_expires_at = ?, updated_at = ?
		WHERE id = ?
	`, code, expiresAt.UnixMilli(), time.Now().UnixMilli(), userID)
	return requireRow(res, err)
}

func (r *usersRepo) MarkVerified(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET is_verified = 1, otp_code = NULL, otp_expires_at = NULL, updated_at = ?
		WHERE id = ?
	`, time.Now().UnixMilli(), userID)
	return requireRow(res, err)
}

func (r *usersRepo) SetPremium(ctx context.Context, userID string, expiresAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET is_premium = 1, premium_expires_at = ?, updated_at = ?
		WHERE id = ?
	`, expiresAt.UnixMilli(), time.Now().UnixMilli(), userID)
	return requireRow(res, err)
}

func (r *usersRepo) ListSuggested(ctx context.Context, excludeID string, excludeFollowed bool) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id <> ?`
	args := []any{excludeID}

	if excludeFollowed {
		query += ` AND id NOT IN (SELECT followee_id FROM follows WHERE follower_id = ?)`
		args = append(args, excludeID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) ClearExpiredOTPs(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_expires_at = NULL
		WHERE otp_expires_at IS NOT NULL AND otp_expires_at < ?
	`, now.UnixMilli())
	return err
}

func (r *usersRepo) DowngradeExpiredPremium(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET is_premium = 0, premium_expires_at = NULL
		WHERE is_premium = 1 AND premium_expires_at IS NOT NULL AND premium_expires_at < ?
	`, now.UnixMilli())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func scanUserRow(row rowScanner) (domain.User, error) {
	var (
		u                       domain.User
		otpCode                 sql.NullString
		otpExpires, premExpires sql.NullInt64
		createdAt, updatedAt    int64
	)

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsVerified,
		&otpCode, &otpExpires, &u.Bio, &u.Gender, &u.ProfilePicture,
		&u.IsPremium, &premExpires, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, err
	}

	u.OTPCode = mapNullString(otpCode)
	u.OTPExpiresAt = mapNullTime(otpExpires)
	u.PremiumExpiresAt = mapNullTime(premExpires)
	u.CreatedAt = mapTime(createdAt)
	u.UpdatedAt = mapTime(updatedAt)
	return u, nil
}
