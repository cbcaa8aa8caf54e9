package profile

// Profile is the single persisted learner record. There is exactly one per
// installation; its presence in the store is the signal that onboarding has
// been completed.
type Profile struct {
	Name      string         `json:"name"`
	Level     Level          `json:"level,omitempty"`
	AvatarKey string         `json:"avatarKey"`
	Stars     int            `json:"stars"`
	Badges    int            `json:"badges"`
	Progress  map[string]any `json:"progress"`
}

// New constructs a fresh profile with zeroed counters, as created at the end
// of onboarding.
func New(name string, level Level, avatarKey string) *Profile {
	return &Profile{
		Name:      name,
		Level:     level,
		AvatarKey: avatarKey,
		Stars:     0,
		Badges:    0,
		Progress:  map[string]any{},
	}
}

// Level is the learner level chosen once at onboarding.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the levels in display order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// DisplayName returns the Arabic label shown to the learner.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "مبتدئ"
	case LevelIntermediate:
		return "متوسط"
	case LevelAdvanced:
		return "متقدم"
	default:
		return string(l)
	}
}

// DisplayValue returns the numeric level shown on the dashboard stats bar.
// Records written before the level field existed display as 1.
func (l Level) DisplayValue() int {
	switch l {
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 1
	}
}
