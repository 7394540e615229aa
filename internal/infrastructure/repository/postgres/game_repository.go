package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	qb "github.com/riskibarqy/pickem-league/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := qb.Select("*").
		From("games").
		Where(qb.Eq("public_id", gameID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}
	return gameFromRow(row), true, nil
}

func (r *GameRepository) ListByPeriod(ctx context.Context, p period.Period) ([]game.Game, error) {
	query, args, err := qb.Select("*").
		From("games").
		Where(
			qb.Eq("week", p.Week),
			qb.Eq("season", p.Season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games by period: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) error {
	query, args, err := qb.InsertModel("games", gameInsertModel{
		PublicID:  g.ID,
		Week:      g.Week,
		Season:    g.Season,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		Winner:    g.Winner,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert game query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func (r *GameRepository) SetWinner(ctx context.Context, gameID, winner string) (bool, error) {
	query, args, err := qb.Update("games").
		Set("winner", winner).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", gameID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build set winner query: %w", err)
	}
	return r.execAffected(ctx, "set game winner", query, args)
}

func (r *GameRepository) Delete(ctx context.Context, gameID string) (bool, error) {
	query, args, err := qb.Update("games").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("public_id", gameID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete game query: %w", err)
	}
	return r.execAffected(ctx, "delete game", query, args)
}

func (r *GameRepository) execAffected(ctx context.Context, op, query string, args []any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return affected > 0, nil
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:        row.PublicID,
		Week:      row.Week,
		Season:    row.Season,
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		Winner:    row.Winner,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
