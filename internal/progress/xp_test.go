package progress

import (
	"errors"
	"testing"
)

func TestAddXP_SingleLevelUp(t *testing.T) {
	// Level 1 threshold is 100: 250 XP consumes 100 into level 2 and
	// leaves 150 working XP (below the level-2 threshold of 200).
	s := NewSnapshot()
	leveled, err := s.AddXP(250)
	if err != nil {
		t.Fatal(err)
	}
	if !leveled {
		t.Error("expected level-up flag")
	}
	if s.Level != 2 || s.XP != 150 || s.TotalXP != 250 {
		t.Errorf("got level=%d xp=%d totalXp=%d, want 2/150/250", s.Level, s.XP, s.TotalXP)
	}
}

func TestAddXP_MultiLevelUp(t *testing.T) {
	// 100+200+300 = 600 to reach level 4; 650 leaves 50 working XP.
	s := NewSnapshot()
	leveled, err := s.AddXP(650)
	if err != nil {
		t.Fatal(err)
	}
	if !leveled {
		t.Error("expected level-up flag")
	}
	if s.Level != 4 || s.XP != 50 {
		t.Errorf("got level=%d xp=%d, want 4/50", s.Level, s.XP)
	}
}

func TestAddXP_NoLevelUp(t *testing.T) {
	s := NewSnapshot()
	leveled, err := s.AddXP(99)
	if err != nil {
		t.Fatal(err)
	}
	if leveled {
		t.Error("unexpected level-up flag")
	}
	if s.Level != 1 || s.XP != 99 {
		t.Errorf("got level=%d xp=%d, want 1/99", s.Level, s.XP)
	}
}

func TestAddXP_ZeroIsNoOp(t *testing.T) {
	s := NewSnapshot()
	leveled, err := s.AddXP(0)
	if err != nil {
		t.Fatal(err)
	}
	if leveled || s.TotalXP != 0 || s.DailyProgress != 0 {
		t.Error("amount 0 must change nothing")
	}
}

func TestAddXP_NegativeRejected(t *testing.T) {
	s := NewSnapshot()
	if _, err := s.AddXP(-5); !errors.Is(err, ErrNegativeXP) {
		t.Errorf("err = %v, want ErrNegativeXP", err)
	}
	if s.TotalXP != 0 || s.XP != 0 || s.Level != 1 {
		t.Error("snapshot mutated on rejected input")
	}
}

func TestAddXP_DailyProgressCountsEverything(t *testing.T) {
	s := NewSnapshot()
	s.AddXP(30)
	s.AddXP(45)
	if s.DailyProgress != 75 {
		t.Errorf("dailyProgress = %d, want 75", s.DailyProgress)
	}
}

func TestAddXP_InvariantAfterSequence(t *testing.T) {
	// Working XP always stays under the current threshold, and totalXp
	// equals the sum of all grants.
	s := NewSnapshot()
	grants := []int{10, 250, 0, 999, 1, 5000}
	sum := 0
	for _, g := range grants {
		if _, err := s.AddXP(g); err != nil {
			t.Fatal(err)
		}
		sum += g
		if s.XP >= XPPerLevel*s.Level {
			t.Fatalf("xp %d not below threshold %d", s.XP, XPPerLevel*s.Level)
		}
	}
	if s.TotalXP != sum {
		t.Errorf("totalXp = %d, want %d", s.TotalXP, sum)
	}
	// XP consumed by leveling is 100*(1+2+...+(level-1)) plus leftover.
	consumed := 0
	for l := 1; l < s.Level; l++ {
		consumed += XPPerLevel * l
	}
	if consumed+s.XP != sum {
		t.Errorf("consumed(%d)+leftover(%d) != total(%d)", consumed, s.XP, sum)
	}
}

func TestSetLevel(t *testing.T) {
	s := NewSnapshot()
	if err := s.SetLevel(7); err != nil {
		t.Fatal(err)
	}
	if s.Level != 7 {
		t.Errorf("level = %d, want 7", s.Level)
	}
	if err := s.SetLevel(0); !errors.Is(err, ErrBadLevel) {
		t.Errorf("err = %v, want ErrBadLevel", err)
	}
}

func TestSetDailyGoal(t *testing.T) {
	s := NewSnapshot()
	if err := s.SetDailyGoal(120); err != nil {
		t.Fatal(err)
	}
	if s.DailyGoal != 120 || s.Settings.DailyGoal != 120 {
		t.Errorf("goal = %d/%d, want mirrored 120", s.DailyGoal, s.Settings.DailyGoal)
	}
	if err := s.SetDailyGoal(0); !errors.Is(err, ErrBadDailyGoal) {
		t.Errorf("err = %v, want ErrBadDailyGoal", err)
	}
}
