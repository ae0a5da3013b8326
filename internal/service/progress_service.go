package service

import (
	"context"
	"encoding/json"
	"errors"
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
	"lingo_backend/pkg/logger"
	"lingo_backend/pkg/monitoring"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	leaderboardLimit    = 100
	leaderboardCacheKey = "leaderboard:top"
)

// ProgressService 负责学习进度的读写、连续天数计算和排行榜
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ActivityRepo *repository.ActivityRepository
	Achievement  *AchievementService
	Redis        *redis.Client

	// 纳秒。配置热更新协程和请求处理协程并发访问，必须走原子操作
	cacheTTL atomic.Int64
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	activityRepo *repository.ActivityRepository,
	achievementService *AchievementService,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *ProgressService {
	s := &ProgressService{
		ProgressRepo: progressRepo,
		ActivityRepo: activityRepo,
		Achievement:  achievementService,
		Redis:        rdb,
	}
	s.cacheTTL.Store(int64(cacheTTL))
	return s
}

// CacheTTL 当前的排行榜缓存存活时间
func (s *ProgressService) CacheTTL() time.Duration {
	return time.Duration(s.cacheTTL.Load())
}

// SetCacheTTL 由配置热更新调用
func (s *ProgressService) SetCacheTTL(d time.Duration) {
	s.cacheTTL.Store(int64(d))
}

// LevelForXP 经验值到等级的换算，每100经验升一级
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/100 + 1
}

// LevelProgress 当前等级内的完成比例 [0,1)
func LevelProgress(xp int) float64 {
	if xp < 0 {
		return 0
	}
	return float64(xp%100) / 100
}

// NextStreak 按自然日计算新的连续学习天数。
// 双方时间都归零到当地午夜后取日差：无历史记录得1，同一天保持不变，
// 恰好隔一天加1，隔更多天归1。
func NextStreak(current int, lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return 1
	}

	lastDay := startOfDay(*lastActivity)
	today := startOfDay(now)

	diff := today.Sub(lastDay)
	if diff < 0 {
		diff = -diff
	}
	diffDays := int((diff + 24*time.Hour - 1) / (24 * time.Hour))

	switch {
	case diffDays == 1:
		return current + 1
	case diffDays > 1:
		return 1
	}
	// 同一天内的重复更新不叠加
	return current
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetProgress 返回用户进度，首次访问时创建零值记录
func (s *ProgressService) GetProgress(userID uint) (*model.UserProgress, error) {
	return s.ProgressRepo.GetOrCreate(userID)
}

// UpdateProgress 覆盖用户进度。连续天数由服务端按日期规则计算，
// 等级由经验值推导，两者都不接受客户端的取值。
func (s *ProgressService) UpdateProgress(userID uint, xp, lessonsCompleted int) (*model.UserProgress, error) {
	current, err := s.ProgressRepo.FindByUser(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	priorStreak := 0
	var lastActivity *time.Time
	if current != nil {
		priorStreak = current.Streak
		lastActivity = current.LastActivityDate
	}

	progress := &model.UserProgress{
		UserID:           userID,
		Level:            LevelForXP(xp),
		XP:               xp,
		Streak:           NextStreak(priorStreak, lastActivity, now),
		LessonsCompleted: lessonsCompleted,
		LastActivityDate: &now,
	}

	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}

	// 进度与日志是两次独立写入，日志失败不回滚已保存的进度
	metadata, _ := json.Marshal(model.ProgressMetadata{
		Level:            progress.Level,
		XP:               progress.XP,
		Streak:           progress.Streak,
		LessonsCompleted: progress.LessonsCompleted,
	})
	activity := &model.Activity{
		UserID:      userID,
		Type:        model.ActivityProgressUpdate,
		Description: "User progress updated",
		Metadata:    metadata,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}

	if s.Achievement != nil {
		if _, err := s.Achievement.SyncForProgress(userID, progress); err != nil {
			logger.Log.Error("achievement sync failed",
				zap.Uint("userID", userID),
				zap.Error(err),
			)
		}
	}

	s.invalidateLeaderboard()
	monitoring.ProgressUpdates.Inc()

	return progress, nil
}

// LeaderboardUser 排行榜条目中内联的用户展示信息
type LeaderboardUser struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// LeaderboardEntry 对外的排行榜条目，userId 字段内联用户信息
type LeaderboardEntry struct {
	User   LeaderboardUser `json:"userId"`
	XP     int             `json:"xp"`
	Level  int             `json:"level"`
	Streak int             `json:"streak"`
}

// Leaderboard 经验值前100名，短时间内走Redis缓存
func (s *ProgressService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var cached []LeaderboardEntry
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	rows, err := s.ProgressRepo.TopByXP(leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LeaderboardEntry{
			User: LeaderboardUser{
				Username:     row.Username,
				Email:        row.Email,
				ProfileImage: row.ProfileImage,
			},
			XP:     row.XP,
			Level:  row.Level,
			Streak: row.Streak,
		})
	}

	if s.Redis != nil {
		if blob, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, blob, s.CacheTTL()).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}

func (s *ProgressService) invalidateLeaderboard() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
