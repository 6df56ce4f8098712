package db

import (
	"context"
	"time"

	"github.com/pasarhub/pasar/internal/identity/entity"
)

func (s *DB) CreateAccount(ctx context.Context, acc entity.NewAccount, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`INSERT INTO accounts (id, email, password, role, verified, approved, status, otp_code, otp_expires_at)
		 VALUES ($1, $2, $3, $4, FALSE, FALSE, $5, $6, $7)`,
		acc.ID, acc.Email, hash, acc.Role, acc.Status, acc.OtpCode, acc.OtpExpiresAt)

	err = s.mapError(err)
	return err
}

// RotateOtp atomically replaces any outstanding code and expiry pair.
func (s *DB) RotateOtp(ctx context.Context, in entity.OtpRotation) (err error) {
	ctx, span := s.startSpan(ctx, "RotateOtp")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`UPDATE accounts SET otp_code = $2, otp_expires_at = $3, updated_at = NOW() WHERE id = $1`,
		in.AccountID, in.Code, in.ExpiresAt)

	err = s.mapError(err)
	return err
}

// ActivateByOtp verifies and activates in a single conditional statement, so
// a matching live code and an expired one cannot race between a read and a
// write. It reports false when no row matched: wrong code or expired.
func (s *DB) ActivateByOtp(ctx context.Context, in entity.OtpActivation) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ActivateByOtp")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE accounts
		 SET verified = TRUE, status = $4, otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		 WHERE email = $1 AND otp_code = $2 AND otp_expires_at >= $3`,
		in.Email, in.Code, in.Now, entity.AccountStatusActive)
	if err != nil {
		err = s.mapError(err)
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// PurgeIfUnverifiedAndExpired deletes the account only when it is condemned:
// unverified with an OTP that expired strictly before now.
func (s *DB) PurgeIfUnverifiedAndExpired(ctx context.Context, email string, now time.Time) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "PurgeIfUnverifiedAndExpired")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`DELETE FROM accounts
		 WHERE email = $1 AND verified = FALSE AND otp_expires_at IS NOT NULL AND otp_expires_at < $2`,
		email, now)
	if err != nil {
		err = s.mapError(err)
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
