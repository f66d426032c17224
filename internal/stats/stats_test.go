package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tasbihapp/tasbih/internal/counter"
	"github.com/tasbihapp/tasbih/internal/models"
	"github.com/tasbihapp/tasbih/internal/storage"
)

func TestCurrentStreakAt(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single today", []string{"2025-06-15"}, 1},
		{"three consecutive", []string{"2025-06-13", "2025-06-14", "2025-06-15"}, 3},
		{"unsorted input", []string{"2025-06-15", "2025-06-13", "2025-06-14"}, 3},
		{"today missing breaks chain", []string{"2025-06-13", "2025-06-14"}, 0},
		{"gap stops the walk", []string{"2025-06-15", "2025-06-12"}, 1},
		{"future dates ignored", []string{"2025-06-20", "2025-06-15"}, 1},
		{"unparseable entries skipped", []string{"not-a-date", "2025-06-15"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreakAt(tt.dates, today); got != tt.want {
				t.Errorf("CurrentStreakAt(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestTotalsOf(t *testing.T) {
	now := time.Now()
	tasbihs := []models.Tasbih{
		{
			Name:         "Subhanallah",
			CurrentCount: 5,
			History: []models.Session{
				{Count: 33, TargetCount: 33, Completed: true, CompletedAt: now},
				{Count: 10, TargetCount: 33, Completed: false, CompletedAt: now},
			},
		},
		{
			Name:         "Alhamdulillah",
			CurrentCount: 0,
			History: []models.Session{
				{Count: 33, TargetCount: 33, Completed: true, CompletedAt: now},
			},
		},
	}

	totals := TotalsOf(tasbihs)

	if totals.TotalLifetimeCount != 81 {
		t.Errorf("TotalLifetimeCount = %d, want 81", totals.TotalLifetimeCount)
	}
	if totals.TotalCompletedSessions != 2 {
		t.Errorf("TotalCompletedSessions = %d, want 2", totals.TotalCompletedSessions)
	}
	if totals.MostUsedTasbih != "Subhanallah" {
		t.Errorf("MostUsedTasbih = %q, want Subhanallah", totals.MostUsedTasbih)
	}
	if totals.MostUsedCount != 48 {
		t.Errorf("MostUsedCount = %d, want 48", totals.MostUsedCount)
	}
	if totals.TasbihUsage["Alhamdulillah"] != 33 {
		t.Errorf("usage[Alhamdulillah] = %d, want 33", totals.TasbihUsage["Alhamdulillah"])
	}
	// 81 counts at roughly a second each rounds to a minute
	if totals.EstimatedTimeMinutes != 1 {
		t.Errorf("EstimatedTimeMinutes = %d, want 1", totals.EstimatedTimeMinutes)
	}
}

func TestTotalsOfTieKeepsFirstSeen(t *testing.T) {
	tasbihs := []models.Tasbih{
		{Name: "First", CurrentCount: 10},
		{Name: "Second", CurrentCount: 10},
	}

	totals := TotalsOf(tasbihs)
	if totals.MostUsedTasbih != "First" {
		t.Errorf("MostUsedTasbih = %q, want First on tie", totals.MostUsedTasbih)
	}
}

func TestTotalsOfMergesSameName(t *testing.T) {
	tasbihs := []models.Tasbih{
		{Name: "Subhanallah", CurrentCount: 5},
		{Name: "Subhanallah", CurrentCount: 7},
	}

	totals := TotalsOf(tasbihs)
	if totals.TasbihUsage["Subhanallah"] != 12 {
		t.Errorf("usage[Subhanallah] = %d, want 12", totals.TasbihUsage["Subhanallah"])
	}
}

func TestAveragesAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasbihs := []models.Tasbih{
		{
			Name:         "Subhanallah",
			CurrentCount: 3,
			History: []models.Session{
				{Count: 30, CompletedAt: now.Add(-2 * time.Hour)},         // all windows
				{Count: 70, CompletedAt: now.Add(-3 * 24 * time.Hour)},    // weekly + monthly
				{Count: 140, CompletedAt: now.Add(-20 * 24 * time.Hour)},  // monthly only
				{Count: 999, CompletedAt: now.Add(-40 * 24 * time.Hour)},  // outside
			},
		},
	}

	averages := AveragesAt(tasbihs, now)

	if averages.Daily != 33 {
		t.Errorf("Daily = %d, want 33", averages.Daily)
	}
	// (3 + 30 + 70) / 7 = 14.71 rounds to 15
	if averages.Weekly != 15 {
		t.Errorf("Weekly = %d, want 15", averages.Weekly)
	}
	// (3 + 30 + 70 + 140) / 30 = 8.1 rounds to 8
	if averages.Monthly != 8 {
		t.Errorf("Monthly = %d, want 8", averages.Monthly)
	}
}

func setupTestEngine(t *testing.T) (*Engine, *counter.TestClock, storage.Provider) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasbih.json")
	provider := storage.NewJSONStore(path)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}
	if err := provider.Load(); err != nil {
		t.Fatalf("failed to load storage: %v", err)
	}
	clock := &counter.TestClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}
	return NewWithClock(provider, clock), clock, provider
}

func TestRecordCompletionIsIdempotentPerDay(t *testing.T) {
	engine, clock, provider := setupTestEngine(t)

	for i := 0; i < 3; i++ {
		if err := engine.RecordCompletionToday(); err != nil {
			t.Fatalf("RecordCompletionToday() returned error: %v", err)
		}
	}

	dates, err := provider.GetCompletionDates()
	if err != nil {
		t.Fatalf("GetCompletionDates() returned error: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("recorded %d dates, want 1", len(dates))
	}
	if dates[0] != clock.CurrentTime.Format("2006-01-02") {
		t.Errorf("recorded %q, want today", dates[0])
	}
}

func TestStreakAcrossDays(t *testing.T) {
	engine, clock, _ := setupTestEngine(t)

	for i := 0; i < 3; i++ {
		if err := engine.RecordCompletionToday(); err != nil {
			t.Fatalf("RecordCompletionToday() returned error: %v", err)
		}
		clock.CurrentTime = clock.CurrentTime.AddDate(0, 0, 1)
	}
	// The clock moved one day past the last completion, so the streak is
	// already broken from the new "today".
	streak, err := engine.CurrentStreak()
	if err != nil {
		t.Fatalf("CurrentStreak() returned error: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0 the day after the run ends", streak)
	}

	clock.CurrentTime = clock.CurrentTime.AddDate(0, 0, -1)
	streak, err = engine.CurrentStreak()
	if err != nil {
		t.Fatalf("CurrentStreak() returned error: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestResetStreak(t *testing.T) {
	engine, _, provider := setupTestEngine(t)

	if err := engine.RecordCompletionToday(); err != nil {
		t.Fatalf("RecordCompletionToday() returned error: %v", err)
	}
	if err := engine.ResetStreak(); err != nil {
		t.Fatalf("ResetStreak() returned error: %v", err)
	}

	dates, _ := provider.GetCompletionDates()
	if len(dates) != 0 {
		t.Errorf("dates length = %d, want 0", len(dates))
	}
	streak, _ := engine.CurrentStreak()
	if streak != 0 {
		t.Errorf("streak = %d, want 0 after reset", streak)
	}
}

func TestEngineTotalsAndAverages(t *testing.T) {
	engine, clock, provider := setupTestEngine(t)

	counters := counter.NewWithClock(provider, clock)
	tasbih, err := counters.Create("Subhanallah", 3, "", "")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		counters.Increment(tasbih.ID)
	}
	if err := counters.Reset(tasbih.ID); err != nil {
		t.Fatalf("Reset() returned error: %v", err)
	}

	totals, err := engine.Totals()
	if err != nil {
		t.Fatalf("Totals() returned error: %v", err)
	}
	if totals.TotalLifetimeCount != 3 {
		t.Errorf("TotalLifetimeCount = %d, want 3", totals.TotalLifetimeCount)
	}
	if totals.TotalCompletedSessions != 1 {
		t.Errorf("TotalCompletedSessions = %d, want 1", totals.TotalCompletedSessions)
	}

	averages, err := engine.Averages()
	if err != nil {
		t.Fatalf("Averages() returned error: %v", err)
	}
	if averages.Daily != 3 {
		t.Errorf("Daily = %d, want 3", averages.Daily)
	}
}
