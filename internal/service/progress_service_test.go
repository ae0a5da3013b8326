package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestNextStreak_FirstActivity(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, NextStreak(0, nil, now))
	// 无历史日期时，已有的计数值不影响结果
	assert.Equal(t, 1, NextStreak(42, nil, now))
}

func TestNextStreak_SameDay(t *testing.T) {
	last := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, 5, NextStreak(5, datePtr(last), now))
}

func TestNextStreak_ConsecutiveDay(t *testing.T) {
	last := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	now := time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC)

	// 跨过午夜即算新的一天，即使只隔了几分钟
	assert.Equal(t, 6, NextStreak(5, datePtr(last), now))
}

func TestNextStreak_GapResets(t *testing.T) {
	last := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	twoDaysLater := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, NextStreak(9, datePtr(last), twoDaysLater))

	weekLater := time.Date(2026, 3, 17, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, NextStreak(9, datePtr(last), weekLater))
}

func TestNextStreak_ClockSkewBackwards(t *testing.T) {
	// 历史日期晚于当前时间（时钟回拨），按日差的绝对值处理
	last := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, NextStreak(3, datePtr(last), now))
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{1000, 11},
		{-10, 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestLevelProgress(t *testing.T) {
	assert.InDelta(t, 0.0, LevelProgress(0), 1e-9)
	assert.InDelta(t, 0.5, LevelProgress(50), 1e-9)
	assert.InDelta(t, 0.99, LevelProgress(99), 1e-9)
	assert.InDelta(t, 0.0, LevelProgress(100), 1e-9)
	assert.InDelta(t, 0.25, LevelProgress(225), 1e-9)
	assert.InDelta(t, 0.0, LevelProgress(-5), 1e-9)
}

func TestCacheTTLHotReload(t *testing.T) {
	s := NewProgressService(nil, nil, nil, nil, time.Minute)
	assert.Equal(t, time.Minute, s.CacheTTL())

	s.SetCacheTTL(5 * time.Second)
	assert.Equal(t, 5*time.Second, s.CacheTTL())
}

func TestCacheTTLConcurrentAccess(t *testing.T) {
	s := NewProgressService(nil, nil, nil, nil, time.Minute)

	// 热更新写与请求读并发进行，-race 下必须干净
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 1; j <= 100; j++ {
				if n%2 == 0 {
					s.SetCacheTTL(time.Duration(j) * time.Second)
				} else {
					assert.Positive(t, int64(s.CacheTTL()))
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestLevelMatchesProgressWithinLevel(t *testing.T) {
	// 等级与级内进度应当对同一经验值自洽
	for xp := 0; xp <= 500; xp += 37 {
		level := LevelForXP(xp)
		frac := LevelProgress(xp)
		reconstructed := (level-1)*100 + int(frac*100+0.5)
		assert.Equal(t, xp, reconstructed, "xp=%d", xp)
	}
}
