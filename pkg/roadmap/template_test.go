package roadmap

import (
	"fmt"
	"testing"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

func TestTemplate_FreshCopy(t *testing.T) {
	levels := Template()

	if len(levels) != models.RoadmapLevelCount {
		t.Fatalf("expected %d levels, got %d", models.RoadmapLevelCount, len(levels))
	}

	for i, l := range levels {
		if l.LevelID != i+1 {
			t.Errorf("level at index %d has id %d", i, l.LevelID)
		}
		wantLocked := l.LevelID != 1
		if l.IsLocked != wantLocked {
			t.Errorf("level %d locked = %v, want %v", l.LevelID, l.IsLocked, wantLocked)
		}
		if l.IsCompleted {
			t.Errorf("level %d should start incomplete", l.LevelID)
		}
	}

	// Mutating one copy must not leak into the next.
	levels[0].IsCompleted = true
	if Template()[0].IsCompleted {
		t.Error("Template() returned a shared slice")
	}
}

func TestSeedTasks(t *testing.T) {
	n := 0
	newID := func() string { n++; return fmt.Sprintf("t%d", n) }

	tasks := SeedTasks("u1", newID)

	if len(tasks) != models.RoadmapLevelCount {
		t.Fatalf("expected %d tasks, got %d", models.RoadmapLevelCount, len(tasks))
	}
	for _, task := range tasks {
		if task.OwnerID != "u1" {
			t.Errorf("task %s owner = %q", task.ID, task.OwnerID)
		}
		want := models.TaskLocked
		if task.LevelID == 1 {
			want = models.TaskAssigned
		}
		if task.Status != want {
			t.Errorf("level %d task status = %q, want %q", task.LevelID, task.Status, want)
		}
		if task.Title == "" {
			t.Errorf("level %d task has no title", task.LevelID)
		}
	}
}

func TestBadgeForLevel(t *testing.T) {
	for level := 1; level <= models.RoadmapLevelCount; level++ {
		badge, err := BadgeForLevel(level)
		if err != nil {
			t.Fatalf("BadgeForLevel(%d): %v", level, err)
		}
		if badge.LevelID != level {
			t.Errorf("badge %s maps to level %d, want %d", badge.ID, badge.LevelID, level)
		}
	}

	if _, err := BadgeForLevel(7); err == nil {
		t.Error("expected error for level beyond the catalog")
	}
}
