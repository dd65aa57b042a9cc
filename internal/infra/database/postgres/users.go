package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogapi/internal/domain"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (r *PGRepo) CreateUser(ctx context.Context, name, email, passHash string) (domain.User, error) {
	q := r.qb().Insert(r.tbl("users")).
		Columns("name", "email", "pass_hash").
		Values(name, email, passHash).
		Suffix("RETURNING id, name, email, pass_hash, COALESCE(active_token, ''), created_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUser", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PassHash, &u.ActiveToken, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			r.logger.Printf("CreateUser duplicate email after %s email=%s", time.Since(start), email)
			return domain.User{}, fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, email)
		}
		r.logger.Printf("CreateUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("CreateUser ok in %s id=%s email=%s", time.Since(start), u.ID, u.Email)
	return u, nil
}

func (r *PGRepo) userBy(ctx context.Context, op string, cond sq.Eq) (domain.User, error) {
	q := r.qb().Select("id", "name", "email", "pass_hash", "COALESCE(active_token, '')", "created_at").
		From(r.tbl("users")).
		Where(cond)

	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PassHash, &u.ActiveToken, &u.CreatedAt); err != nil {
		if isNoRows(err) {
			r.logger.Printf("%s: not found in %s", op, time.Since(start))
			return domain.User{}, domain.ErrNotFound
		}
		r.logger.Printf("%s scan error after %s: %v", op, time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("%s ok in %s id=%s", op, time.Since(start), u.ID)
	return u, nil
}

func (r *PGRepo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.userBy(ctx, "UserByEmail", sq.Eq{"email": email})
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	return r.userBy(ctx, "UserByID", sq.Eq{"id": id})
}

// SetActiveToken overwrites the single session slot. The overwrite is
// deliberately unconditional: a concurrent login losing its session is the
// intended single-session behavior.
func (r *PGRepo) SetActiveToken(ctx context.Context, id domain.UserID, token string) error {
	q := r.qb().Update(r.tbl("users")).
		Set("active_token", token).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SetActiveToken", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("SetActiveToken exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("SetActiveToken no rows in %s id=%s", time.Since(start), id)
		return domain.ErrNotFound
	}
	r.logger.Printf("SetActiveToken ok in %s id=%s", time.Since(start), id)
	return nil
}

// ClearActiveToken is guarded: it only fires when a session exists, so a
// double logout reports ErrNotLoggedIn instead of silently succeeding.
func (r *PGRepo) ClearActiveToken(ctx context.Context, id domain.UserID) error {
	q := r.qb().Update(r.tbl("users")).
		Set("active_token", nil).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.NotEq{"active_token": nil},
		})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ClearActiveToken", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ClearActiveToken exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("ClearActiveToken no active session in %s id=%s", time.Since(start), id)
		return domain.ErrNotLoggedIn
	}
	r.logger.Printf("ClearActiveToken ok in %s id=%s", time.Since(start), id)
	return nil
}
