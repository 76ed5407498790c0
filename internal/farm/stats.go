package farm

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/prefs"
)

// Preference keys.
const (
	KeyHighScore            = "HighScore"
	KeyTotalScore           = "TotalScore"
	KeyTotalHarvests        = "TotalHarvests"
	KeyTotalPlants          = "TotalPlants"
	KeyFoodTypePrefix       = "FoodType_"
	KeyUnlockedAchievements = "UnlockedAchievements"
)

// Achievement kinds.
const (
	AchievementTotalHarvests = "total_harvests"
	AchievementCropHarvests  = "crop_harvests"
	AchievementTotalScore    = "total_score"
)

// Achievement is an unlockable milestone.
type Achievement = config.AchievementConfig

// Stats keeps the score and lifetime statistics and checks achievements.
// It is the HarvestSink of every cell.
type Stats struct {
	store  prefs.Store
	logger *log.Logger

	current  int
	total    int
	high     int
	harvests int
	plants   int
	perCrop  map[string]int

	achievements []Achievement
	unlocked     []string

	OnScoreChanged func(current, total int)
	OnUnlock       func(a Achievement)
}

// NewStats creates stats backed by store and loads saved values.
// A nil store keeps everything in memory.
func NewStats(store prefs.Store, achievements []Achievement, logger *log.Logger) *Stats {
	if store == nil {
		store = prefs.NewMemory()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Stats{
		store:        store,
		logger:       logger,
		perCrop:      make(map[string]int),
		achievements: achievements,
	}
	s.load()
	return s
}

func (s *Stats) load() {
	s.high = s.store.Int(KeyHighScore, 0)
	s.total = s.store.Int(KeyTotalScore, 0)
	s.harvests = s.store.Int(KeyTotalHarvests, 0)
	s.plants = s.store.Int(KeyTotalPlants, 0)
	for _, k := range s.store.Keys() {
		if crop, ok := strings.CutPrefix(k, KeyFoodTypePrefix); ok {
			s.perCrop[crop] = s.store.Int(k, 0)
		}
	}
	for name := range strings.SplitSeq(s.store.String(KeyUnlockedAchievements, ""), ",") {
		if name == "" || slices.Contains(s.unlocked, name) {
			continue
		}
		if _, ok := s.achievement(name); ok {
			s.unlocked = append(s.unlocked, name)
		}
	}
}

// AddPoints adds to the current and lifetime score. A new high score is
// saved immediately.
func (s *Stats) AddPoints(n int) {
	s.current += n
	s.total += n
	if s.OnScoreChanged != nil {
		s.OnScoreChanged(s.current, s.total)
	}
	if s.current > s.high {
		s.high = s.current
		if err := s.Save(); err != nil {
			s.logger.Error("saving high score", "err", err)
		}
	}
	s.check()
	s.logger.Debug("points added", "points", n, "score", s.current, "total", s.total)
}

// RecordHarvest counts a harvest of the given crop.
func (s *Stats) RecordHarvest(crop string) {
	s.harvests++
	s.perCrop[crop]++
	s.check()
}

// RecordPlant counts a planting.
func (s *Stats) RecordPlant(string) { s.plants++ }

// ResetCurrent zeroes the current score.
func (s *Stats) ResetCurrent() {
	s.current = 0
	if s.OnScoreChanged != nil {
		s.OnScoreChanged(s.current, s.total)
	}
}

// ResetAll wipes every statistic and the saved keys.
func (s *Stats) ResetAll() error {
	s.current, s.total, s.high, s.harvests, s.plants = 0, 0, 0, 0, 0
	s.perCrop = make(map[string]int)
	s.unlocked = nil
	for _, k := range s.store.Keys() {
		s.store.Delete(k)
	}
	return s.Save()
}

func (s *Stats) check() {
	for _, a := range s.achievements {
		if slices.Contains(s.unlocked, a.Name) || !s.met(a) {
			continue
		}
		s.unlocked = append(s.unlocked, a.Name)
		s.logger.Info("achievement unlocked", "name", a.Name, "description", a.Description)
		if s.OnUnlock != nil {
			s.OnUnlock(a)
		}
	}
}

func (s *Stats) met(a Achievement) bool {
	switch a.Type {
	case AchievementTotalHarvests:
		return s.harvests >= a.Requirement
	case AchievementCropHarvests:
		return s.perCrop[a.Crop] >= a.Requirement
	case AchievementTotalScore:
		return s.total >= a.Requirement
	}
	return false
}

func (s *Stats) achievement(name string) (Achievement, bool) {
	for _, a := range s.achievements {
		if a.Name == name {
			return a, true
		}
	}
	return Achievement{}, false
}

// Save writes every statistic to the store.
func (s *Stats) Save() error {
	s.store.SetInt(KeyHighScore, s.high)
	s.store.SetInt(KeyTotalScore, s.total)
	s.store.SetInt(KeyTotalHarvests, s.harvests)
	s.store.SetInt(KeyTotalPlants, s.plants)
	for crop, n := range s.perCrop {
		s.store.SetInt(KeyFoodTypePrefix+crop, n)
	}
	var sb strings.Builder
	for _, name := range s.unlocked {
		sb.WriteString(name)
		sb.WriteByte(',')
	}
	s.store.SetString(KeyUnlockedAchievements, sb.String())
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("farm: save stats: %w", err)
	}
	return nil
}

func (s *Stats) Current() int  { return s.current }
func (s *Stats) Total() int    { return s.total }
func (s *Stats) High() int     { return s.high }
func (s *Stats) Harvests() int { return s.harvests }
func (s *Stats) Plants() int   { return s.plants }

// CropHarvests returns the lifetime harvests of one crop.
func (s *Stats) CropHarvests(crop string) int { return s.perCrop[crop] }

// Unlocked returns the unlocked achievement names in unlock order.
func (s *Stats) Unlocked() []string { return slices.Clone(s.unlocked) }

// Achievements returns every configured achievement.
func (s *Stats) Achievements() []Achievement { return slices.Clone(s.achievements) }

// IsUnlocked reports whether the named achievement is unlocked.
func (s *Stats) IsUnlocked(name string) bool { return slices.Contains(s.unlocked, name) }
