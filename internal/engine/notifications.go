package engine

import "github.com/abhisek/kotoba/internal/achievements"

// ConsumeLevelUp reports whether any level was gained since the last call
// and clears the flag. The flag is set once per batch of level-ups, so a
// single large XP grant produces exactly one notification.
func (e *Engine) ConsumeLevelUp() bool {
	v := e.levelUp
	e.levelUp = false
	return v
}

// PendingAchievements returns the number of unlock notifications waiting
// to be shown.
func (e *Engine) PendingAchievements() int {
	return len(e.pending)
}

// CurrentAchievement returns the next unlock notification without
// consuming it. ok is false when the queue is empty.
func (e *Engine) CurrentAchievement() (a achievements.Achievement, ok bool) {
	if len(e.pending) == 0 {
		return achievements.Achievement{}, false
	}
	return e.pending[0], true
}

// DismissAchievement drops the front notification, advancing the modal
// queue to the next unlock.
func (e *Engine) DismissAchievement() {
	if len(e.pending) == 0 {
		return
	}
	e.pending = e.pending[1:]
}
