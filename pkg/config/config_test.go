package config_test

import (
	"testing"
	"time"

	"github.com/limbo/cookstreak/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestConfigValues(t *testing.T) {
	cfg := config.New()

	t.Run("ints and durations", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		t.Setenv("TEST_BAD_INT", "forty")
		t.Setenv("TEST_DURATION", "250ms")
		t.Setenv("TEST_NEGATIVE_DURATION", "-1s")
		assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
		assert.Equal(t, 1, cfg.GetInt("TEST_BAD_INT", 1))
		assert.Equal(t, 250*time.Millisecond, cfg.GetDuration("TEST_DURATION", time.Second))
		assert.Equal(t, time.Second, cfg.GetDuration("TEST_NEGATIVE_DURATION", time.Second))
		assert.Equal(t, "fallback", cfg.GetStringOr("TEST_UNSET_KEY", "fallback"))
	})

	t.Run("location", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Asia/Tokyo")
		assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
		t.Setenv("TIMEZONE", "Mars/Olympus")
		assert.Equal(t, time.Local, cfg.Location())
	})

	t.Run("week start", func(t *testing.T) {
		t.Setenv("WEEK_START", "Sunday")
		assert.Equal(t, time.Sunday, cfg.WeekStart())
		t.Setenv("WEEK_START", "")
		assert.Equal(t, time.Monday, cfg.WeekStart())
	})
}
