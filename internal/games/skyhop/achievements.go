package skyhop

// Snapshot is the data achievements are judged on.
type Snapshot struct {
	Score            int
	Level            int
	RunPowerUps      int
	TotalJumps       int
	ObstaclesCleared int
	GamesPlayed      int
}

// Achievement is a named predicate over a Snapshot.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Check       func(Snapshot) bool
}

// Achievements is the evaluation order.
var Achievements = []Achievement{
	{
		ID: "first_jump", Name: "First Leap", Icon: "🦘",
		Description: "Make your first jump",
		Check:       func(s Snapshot) bool { return s.TotalJumps >= 1 },
	},
	{
		ID: "century", Name: "Century", Icon: "💯",
		Description: "Score 100 points in a run",
		Check:       func(s Snapshot) bool { return s.Score >= 100 },
	},
	{
		ID: "high_flyer", Name: "High Flyer", Icon: "🚀",
		Description: "Score 250 points in a run",
		Check:       func(s Snapshot) bool { return s.Score >= 250 },
	},
	{
		ID: "perfect_run", Name: "Perfect Run", Icon: "✨",
		Description: "Score 500 points without collecting a power-up",
		Check:       func(s Snapshot) bool { return s.Score >= 500 && s.RunPowerUps == 0 },
	},
	{
		ID: "level_five", Name: "Speed Demon", Icon: "⚡",
		Description: "Reach level 5",
		Check:       func(s Snapshot) bool { return s.Level >= 5 },
	},
	{
		ID: "obstacle_master", Name: "Obstacle Master", Icon: "🏆",
		Description: "Clear 100 obstacles in total",
		Check:       func(s Snapshot) bool { return s.ObstaclesCleared >= 100 },
	},
	{
		ID: "marathon", Name: "Marathon", Icon: "🏃",
		Description: "Play 10 games",
		Check:       func(s Snapshot) bool { return s.GamesPlayed >= 10 },
	},
	{
		ID: "jump_addict", Name: "Jump Addict", Icon: "🎯",
		Description: "Jump 500 times in total",
		Check:       func(s Snapshot) bool { return s.TotalJumps >= 500 },
	},
}

// AchievementByID looks up an achievement definition.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Evaluate returns, in list order, the achievements whose predicate holds
// and that unlocked does not already contain. It changes nothing.
func Evaluate(list []Achievement, snap Snapshot, unlocked func(id string) bool) []Achievement {
	var fresh []Achievement
	for _, a := range list {
		if unlocked(a.ID) {
			continue
		}
		if a.Check(snap) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
