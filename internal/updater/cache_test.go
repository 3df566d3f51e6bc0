package updater

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	tmp := t.TempDir()

	in := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.0.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(tmp, in); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	out, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if out == nil {
		t.Fatal("expected cache, got nil")
	}
	if out.LatestVersion != "1.2.0" || !out.UpdateAvailable {
		t.Errorf("cache round trip lost data: %+v", out)
	}
}

func TestLoadCache_MissingIsNil(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Errorf("expected nil cache for missing file, got %+v", cache)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, time.Hour) {
		t.Error("fresh cache reported stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-2 * time.Hour)}
	if !IsCacheStale(old, time.Hour) {
		t.Error("old cache reported fresh")
	}
}
