package services

// Gamification XP formula. Level N requires xpForLevel(N) total XP, quadratic
// so early levels come fast and later ones slow down.

// XP awards per gamification event.
const (
	XPDealViewed    = 5
	XPDealSaved     = 10
	XPQuizCompleted = 50
	XPDealPurchased = 100
	XPStreakDay     = 15
)

const maxLevel = 50

// xpForLevel returns the total XP required to reach the given level.
// Level 1 is the floor at 0 XP.
func xpForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 50 * (level - 1) * (level - 1)
}

// LevelForXP derives the level from accumulated XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for level < maxLevel && xp >= xpForLevel(level+1) {
		level++
	}
	return level
}

// XPForNextLevel returns how much XP is still needed to level up, and false
// once the cap is reached.
func XPForNextLevel(xp int) (int, bool) {
	level := LevelForXP(xp)
	if level >= maxLevel {
		return 0, false
	}
	return xpForLevel(level+1) - xp, true
}
