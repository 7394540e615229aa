package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/pickem-league/internal/domain/game"
	"github.com/riskibarqy/pickem-league/internal/domain/period"
	"github.com/riskibarqy/pickem-league/internal/domain/score"
	"github.com/riskibarqy/pickem-league/internal/domain/user"
	"github.com/riskibarqy/pickem-league/internal/platform/cache"
	"github.com/riskibarqy/pickem-league/internal/platform/logging"
	"github.com/riskibarqy/pickem-league/internal/platform/resilience"
)

type ScoringConfig struct {
	// Workers bounds how many users are scored in parallel. Values below 2
	// score users one at a time.
	Workers int
}

// ScoringMetrics receives one observation per recompute run.
type ScoringMetrics interface {
	ObserveRecompute(result RecomputeResult, elapsed time.Duration, err error)
}

type noopScoringMetrics struct{}

func (noopScoringMetrics) ObserveRecompute(RecomputeResult, time.Duration, error) {}

type RecomputeResult struct {
	Period         period.Period
	UsersProcessed int
	// UnmatchedPicks counts picks pointing at games outside Period. They are
	// never scored and are reported for visibility only.
	UnmatchedPicks int
}

// ScoringService recomputes weekly scores and season totals.
//
// Season totals are always re-summed from every weekly score of the season
// instead of being adjusted incrementally, so a run repairs any earlier drift.
// The cost is one extra read per user. Runs for the same season hold a
// per-season lock; the lock is process local.
type ScoringService struct {
	userRepo  user.Repository
	gameRepo  game.Repository
	scoreRepo score.Repository
	locks     *resilience.KeyedMutex
	cache     *cache.Store
	metrics   ScoringMetrics
	cfg       ScoringConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewScoringService(
	userRepo user.Repository,
	gameRepo game.Repository,
	scoreRepo score.Repository,
	locks *resilience.KeyedMutex,
	cacheStore *cache.Store,
	metrics ScoringMetrics,
	cfg ScoringConfig,
	logger *logging.Logger,
) *ScoringService {
	if locks == nil {
		locks = resilience.NewKeyedMutex()
	}
	if metrics == nil {
		metrics = noopScoringMetrics{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &ScoringService{
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
		locks:     locks,
		cache:     cacheStore,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// RecomputeScores scores every user against the games of p, upserts their
// weekly score and rewrites their season total. The first store failure stops
// the run and is returned marked as ErrStoreFailure.
func (s *ScoringService) RecomputeScores(ctx context.Context, p period.Period) (result RecomputeResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecomputeScores")
	defer span.End()

	start := time.Now()
	result.Period = p
	defer func() {
		s.metrics.ObserveRecompute(result, time.Since(start), err)
	}()

	unlock, err := s.locks.Lock(ctx, seasonLockKey(p.Season))
	if err != nil {
		return result, fmt.Errorf("acquire season lock: %w", err)
	}
	defer unlock()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return result, storeFailure("list users", err)
	}
	games, err := s.gameRepo.ListByPeriod(ctx, p)
	if err != nil {
		return result, storeFailure("list games by period", err)
	}

	// Partial writes are possible on failure, so cached views are dropped
	// either way.
	defer s.cache.DeletePrefix(ctx, seasonCachePrefix(p.Season))

	var processed, unmatched atomic.Int64
	if s.cfg.Workers < 2 || len(users) < 2 {
		for _, u := range users {
			tally, err := s.scoreUser(ctx, u, p, games)
			if err != nil {
				result.UsersProcessed = int(processed.Load())
				result.UnmatchedPicks = int(unmatched.Load())
				return result, err
			}
			processed.Add(1)
			unmatched.Add(int64(tally.Unmatched))
		}
	} else if err := s.scoreConcurrently(ctx, users, p, games, &processed, &unmatched); err != nil {
		result.UsersProcessed = int(processed.Load())
		result.UnmatchedPicks = int(unmatched.Load())
		return result, err
	}

	result.UsersProcessed = int(processed.Load())
	result.UnmatchedPicks = int(unmatched.Load())
	s.logger.InfoContext(ctx, "scores recomputed",
		"week", p.Week,
		"season", p.Season,
		"users", result.UsersProcessed,
		"games", len(games),
		"unmatched_picks", result.UnmatchedPicks,
	)
	return result, nil
}

func (s *ScoringService) scoreConcurrently(
	ctx context.Context,
	users []user.User,
	p period.Period,
	games []game.Game,
	processed, unmatched *atomic.Int64,
) error {
	workerCount := s.cfg.Workers
	if workerCount > len(users) {
		workerCount = len(users)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		firstErr error
		errOnce  sync.Once
		workers  sync.WaitGroup
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, u := range users {
		if runCtx.Err() != nil {
			break
		}
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if runCtx.Err() != nil {
				return
			}
			tally, err := s.scoreUser(runCtx, u, p, games)
			if err != nil {
				fail(err)
				return
			}
			processed.Add(1)
			unmatched.Add(int64(tally.Unmatched))
		}); err != nil {
			workers.Done()
			fail(fmt.Errorf("submit task to worker pool: %w", err))
			break
		}
	}
	workers.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (s *ScoringService) scoreUser(ctx context.Context, u user.User, p period.Period, games []game.Game) (score.Tally, error) {
	tally := score.TallyWeek(u.Picks, games)
	now := s.now().UTC()

	if err := s.scoreRepo.UpsertWeekly(ctx, score.WeeklyScore{
		UserID:       u.ID,
		Week:         p.Week,
		Season:       p.Season,
		Score:        tally.Points,
		CalculatedAt: now,
	}); err != nil {
		return tally, storeFailure(fmt.Sprintf("upsert weekly score user=%s", u.ID), err)
	}

	weekly, err := s.scoreRepo.ListWeeklyByUserSeason(ctx, u.ID, p.Season)
	if err != nil {
		return tally, storeFailure(fmt.Sprintf("list weekly scores user=%s", u.ID), err)
	}

	if err := s.scoreRepo.UpsertSeasonTotal(ctx, score.SeasonTotal{
		UserID:       u.ID,
		Season:       p.Season,
		TotalScore:   score.SumWeekly(weekly),
		CalculatedAt: now,
	}); err != nil {
		return tally, storeFailure(fmt.Sprintf("upsert season total user=%s", u.ID), err)
	}
	return tally, nil
}

func seasonLockKey(season int) string {
	return fmt.Sprintf("season:%d", season)
}
