package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return &UsersRepository{
		conn: Connect(cfg),
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, level, experience_points, created_at, updated_at FROM users WHERE name = $1;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, level, experience_points, created_at, updated_at FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Level, &user.ExperiencePoints, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, password_hash = $2, updated_at = NOW() WHERE id = $3;`,
		user.Name,
		user.PasswordHash,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// AddExperience adds amount on top of the stored points in its own transaction.
func (ur *UsersRepository) AddExperience(ctx context.Context, uid uuid.UUID, amount int, at time.Time) (*entity.ProgressUpdate, error) {
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	update, err := grantExperience(ctx, tx, uid, amount, at)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing user progress error: " + err.Error())
	}
	return update, nil
}

// grantExperience locks the user row until tx ends, so concurrent grants
// for one user are applied one after another.
func grantExperience(ctx context.Context, tx pgx.Tx, uid uuid.UUID, amount int, at time.Time) (*entity.ProgressUpdate, error) {
	user, err := scanUser(tx.QueryRow(ctx, lockUserQuery, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("locking user error: " + err.Error())
	}
	leveledUp := gamification.AddExperience(user, amount, at)
	if amount > 0 {
		_, err = tx.Exec(ctx, updateProgressQuery, user.Level, user.ExperiencePoints, user.UpdatedAt, user.ID)
		if err != nil {
			return nil, errors.New("updating user progress error: " + err.Error())
		}
	}
	return &entity.ProgressUpdate{
		Level:      user.Level,
		Experience: user.ExperiencePoints,
		LeveledUp:  leveledUp,
	}, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

const (
	lockUserQuery       = `SELECT id, name, password_hash, level, experience_points, created_at, updated_at FROM users WHERE id = $1 FOR UPDATE;`
	updateProgressQuery = `UPDATE users SET level = $1, experience_points = $2, updated_at = $3 WHERE id = $4;`
)
