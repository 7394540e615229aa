package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	qb "github.com/riskibarqy/pickem-league/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) UpsertWeekly(ctx context.Context, s score.WeeklyScore) error {
	query, args, err := qb.UpsertModel("weekly_scores", weeklyScoreUpsertModel{
		UserID:       s.UserID,
		Week:         s.Week,
		Season:       s.Season,
		Score:        s.Score,
		CalculatedAt: s.CalculatedAt,
		UpdatedAt:    s.CalculatedAt,
	}, []string{"user_public_id", "week", "season"})
	if err != nil {
		return fmt.Errorf("build upsert weekly score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert weekly score: %w", err)
	}
	return nil
}

func (r *ScoreRepository) ListWeeklyByUserSeason(ctx context.Context, userID string, season int) ([]score.WeeklyScore, error) {
	return r.listWeekly(ctx, "list weekly scores by user season",
		qb.Eq("user_public_id", userID),
		qb.Eq("season", season),
	)
}

func (r *ScoreRepository) ListWeeklyByPeriod(ctx context.Context, p period.Period) ([]score.WeeklyScore, error) {
	return r.listWeekly(ctx, "list weekly scores by period",
		qb.Eq("week", p.Week),
		qb.Eq("season", p.Season),
	)
}

func (r *ScoreRepository) ListWeeklyBySeason(ctx context.Context, season int) ([]score.WeeklyScore, error) {
	return r.listWeekly(ctx, "list weekly scores by season", qb.Eq("season", season))
}

func (r *ScoreRepository) UpsertSeasonTotal(ctx context.Context, t score.SeasonTotal) error {
	query, args, err := qb.UpsertModel("season_totals", seasonTotalUpsertModel{
		UserID:       t.UserID,
		Season:       t.Season,
		TotalScore:   t.TotalScore,
		CalculatedAt: t.CalculatedAt,
		UpdatedAt:    t.CalculatedAt,
	}, []string{"user_public_id", "season"})
	if err != nil {
		return fmt.Errorf("build upsert season total query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert season total: %w", err)
	}
	return nil
}

func (r *ScoreRepository) GetSeasonTotal(ctx context.Context, userID string, season int) (score.SeasonTotal, bool, error) {
	query, args, err := qb.Select("*").
		From("season_totals").
		Where(qb.Eq("user_public_id", userID), qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return score.SeasonTotal{}, false, fmt.Errorf("build get season total query: %w", err)
	}

	var row seasonTotalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.SeasonTotal{}, false, nil
		}
		return score.SeasonTotal{}, false, fmt.Errorf("get season total: %w", err)
	}
	return seasonTotalFromRow(row), true, nil
}

func (r *ScoreRepository) ListSeasonTotals(ctx context.Context, season int) ([]score.SeasonTotal, error) {
	query, args, err := qb.Select("*").
		From("season_totals").
		Where(qb.Eq("season", season)).
		OrderBy("total_score DESC", "user_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season totals query: %w", err)
	}

	var rows []seasonTotalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season totals: %w", err)
	}

	out := make([]score.SeasonTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonTotalFromRow(row))
	}
	return out, nil
}

func (r *ScoreRepository) listWeekly(ctx context.Context, op string, conditions ...qb.Condition) ([]score.WeeklyScore, error) {
	query, args, err := qb.Select("*").
		From("weekly_scores").
		Where(conditions...).
		OrderBy("season", "week", "user_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]score.WeeklyScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.WeeklyScore{
			UserID:       row.UserID,
			Week:         row.Week,
			Season:       row.Season,
			Score:        row.Score,
			CalculatedAt: row.CalculatedAt,
		})
	}
	return out, nil
}

func seasonTotalFromRow(row seasonTotalTableModel) score.SeasonTotal {
	return score.SeasonTotal{
		UserID:       row.UserID,
		Season:       row.Season,
		TotalScore:   row.TotalScore,
		CalculatedAt: row.CalculatedAt,
	}
}
