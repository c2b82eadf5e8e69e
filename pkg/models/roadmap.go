package models

// RoadmapLevel is one of the six fixed accelerator stages. A fresh ordered
// copy of the six-level template is snapshotted per user at registration;
// only the state machine mutates it afterwards.
type RoadmapLevel struct {
	LevelID     int    `json:"level_id"` // 1..6
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	IsLocked    bool   `json:"is_locked"`
	IsCompleted bool   `json:"is_completed"`
}

// RoadmapLevelCount is the fixed number of roadmap stages.
const RoadmapLevelCount = 6

// Badge is one entry of the fixed six-badge catalog, tied 1:1 to a roadmap
// level. Badges are not persisted as records; awarding appends the badge id
// to a User's earned set.
type Badge struct {
	ID          string `json:"id" yaml:"id"`
	LevelID     int    `json:"level_id" yaml:"level_id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
	Description string `json:"description,omitempty" yaml:"description"`
}
