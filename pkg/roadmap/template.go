// Package roadmap holds the fixed six-level accelerator template and the
// badge catalog, loaded from an embedded YAML file.
package roadmap

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

//go:embed template.yaml
var templateYAML []byte

type templateLevel struct {
	LevelID         int    `yaml:"level_id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Icon            string `yaml:"icon"`
	Color           string `yaml:"color"`
	TaskTitle       string `yaml:"task_title"`
	TaskDescription string `yaml:"task_description"`
}

type templateFile struct {
	Levels []templateLevel `yaml:"levels"`
	Badges []models.Badge  `yaml:"badges"`
}

var tmpl templateFile

func init() {
	if err := yaml.Unmarshal(templateYAML, &tmpl); err != nil {
		panic(fmt.Sprintf("roadmap: invalid embedded template: %v", err))
	}
	if len(tmpl.Levels) != models.RoadmapLevelCount || len(tmpl.Badges) != models.RoadmapLevelCount {
		panic(fmt.Sprintf("roadmap: template must define exactly %d levels and badges", models.RoadmapLevelCount))
	}
}

// Template returns a fresh ordered copy of the six roadmap levels. Level 1
// starts unlocked, all others locked, nothing completed.
func Template() []models.RoadmapLevel {
	levels := make([]models.RoadmapLevel, 0, len(tmpl.Levels))
	for _, l := range tmpl.Levels {
		levels = append(levels, models.RoadmapLevel{
			LevelID:     l.LevelID,
			Name:        l.Name,
			Description: l.Description,
			Icon:        l.Icon,
			Color:       l.Color,
			IsLocked:    l.LevelID != 1,
			IsCompleted: false,
		})
	}
	return levels
}

// SeedTasks builds the six per-level tasks for a newly registered founder.
// The level-1 task starts assigned; all others start locked.
func SeedTasks(ownerID string, newID func() string) []models.Task {
	tasks := make([]models.Task, 0, len(tmpl.Levels))
	for _, l := range tmpl.Levels {
		status := models.TaskLocked
		if l.LevelID == 1 {
			status = models.TaskAssigned
		}
		tasks = append(tasks, models.Task{
			ID:          newID(),
			LevelID:     l.LevelID,
			OwnerID:     ownerID,
			Title:       l.TaskTitle,
			Description: l.TaskDescription,
			Status:      status,
		})
	}
	return tasks
}

// BadgeForLevel returns the badge awarded on completing the given level.
func BadgeForLevel(levelID int) (models.Badge, error) {
	for _, b := range tmpl.Badges {
		if b.LevelID == levelID {
			return b, nil
		}
	}
	return models.Badge{}, fmt.Errorf("no badge for level %d", levelID)
}

// Badges returns the full badge catalog in level order.
func Badges() []models.Badge {
	out := make([]models.Badge, len(tmpl.Badges))
	copy(out, tmpl.Badges)
	return out
}
