package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pickem-league/internal/domain/user"
	qb "github.com/riskibarqy/pickem-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by id", qb.Eq("public_id", userID))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by username", qb.Eq("username", username))
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").
		From("users").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(rows) == 0 {
		return []user.User{}, nil
	}

	userIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.PublicID)
	}
	picks, err := r.listPicks(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row, picks[row.PublicID]))
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	query, args, err := qb.InsertModel("users", userInsertModel{
		PublicID:     u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", user.ErrUsernameTaken, u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// ReplacePicks swaps the full pick set of a user in one transaction.
func (r *UserRepository) ReplacePicks(ctx context.Context, userID string, picks []user.Pick) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace picks tx: %w", err)
	}
	defer rollback(tx)

	lockQuery, lockArgs, err := qb.Select("public_id").
		From("users").
		Where(qb.Eq("public_id", userID), qb.IsNull("deleted_at")).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock user query: %w", err)
	}
	var locked string
	if err := tx.GetContext(ctx, &locked, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("user %s not found", userID)
		}
		return fmt.Errorf("lock user: %w", err)
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("user_picks").
		Where(qb.Eq("user_public_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete picks query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete picks: %w", err)
	}

	for idx, p := range picks {
		query, args, err := qb.InsertModel("user_picks", userPickInsertModel{
			UserID:   userID,
			GameID:   p.GameID,
			Label:    p.Label,
			Position: idx,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert pick query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert pick game=%s: %w", p.GameID, err)
		}
	}

	updateQuery, updateArgs, err := qb.Update("users").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build touch user query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return fmt.Errorf("touch user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace picks: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := qb.Update("users").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("public_id", userID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, op string, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").
		From("users").
		Where(cond, qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	picks, err := r.listPicks(ctx, []string{row.PublicID})
	if err != nil {
		return user.User{}, false, err
	}
	return userFromRow(row, picks[row.PublicID]), true, nil
}

func (r *UserRepository) listPicks(ctx context.Context, userIDs []string) (map[string][]user.Pick, error) {
	query, args, err := qb.Select("*").
		From("user_picks").
		Where(qb.InStrings("user_public_id", userIDs)).
		OrderBy("user_public_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []userPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make(map[string][]user.Pick, len(userIDs))
	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], user.Pick{GameID: row.GameID, Label: row.Label})
	}
	return out, nil
}

func userFromRow(row userTableModel, picks []user.Pick) user.User {
	return user.User{
		ID:           row.PublicID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		Picks:        picks,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
