package progressController

import (
	"math"
	"sort"
	"time"

	"rauha/models"
)

// UserStats is the per-user statistics response
type UserStats struct {
	TotalStepsCompleted int                    `json:"totalStepsCompleted"`
	TherapyProgress     []TherapyProgressEntry `json:"therapyProgress"`
	ModuleProgress      []ModuleProgressEntry  `json:"moduleProgress"`
	RecentActivity      []ActivityEntry        `json:"recentActivity"`
	OverallStats        OverallStats           `json:"overallStats"`
}

// TherapyProgressEntry is a per-therapy rollup of a user's progress
type TherapyProgressEntry struct {
	TherapyID          uint                  `json:"therapyId"`
	TherapyTitle       string                `json:"therapyTitle"`
	CompletedSteps     int                   `json:"completedSteps"`
	TotalSteps         int                   `json:"totalSteps"`
	ProgressPercentage int                   `json:"progressPercentage"`
	Modules            []ModuleProgressEntry `json:"modules"`
}

// ModuleProgressEntry is a per-module rollup of a user's progress
type ModuleProgressEntry struct {
	ModuleID           uint   `json:"moduleId"`
	ModuleTitle        string `json:"moduleTitle"`
	TherapyID          uint   `json:"therapyId"`
	CompletedSteps     int    `json:"completedSteps"`
	TotalSteps         int    `json:"totalSteps"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// ActivityEntry is a single completion event
type ActivityEntry struct {
	StepTitle    string    `json:"stepTitle"`
	TherapyTitle string    `json:"therapyTitle"`
	CompletedAt  time.Time `json:"completedAt"`
}

// OverallStats summarizes a user's progress across therapies
type OverallStats struct {
	TotalTherapiesStarted   int `json:"totalTherapiesStarted"`
	TotalTherapiesCompleted int `json:"totalTherapiesCompleted"`
	AverageCompletionRate   int `json:"averageCompletionRate"`
}

// recentActivityLimit caps the recent activity list
const recentActivityLimit = 5

// percentage computes round-half-up completed/total, 0 when total is 0
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

type userModuleAgg struct {
	module    models.Module
	steps     map[uint]bool
	completed int
}

type userTherapyAgg struct {
	therapy   models.Therapy
	steps     map[uint]bool
	completed int
	modules   map[uint]*userModuleAgg
}

// BuildUserStats folds a user's progress rows into per-therapy and
// per-module rollups. Each row is joined Step -> Module -> Therapy through
// the lookup maps; rows whose chain cannot be resolved are dropped.
// Total step counts are the distinct steps observed in the rows, not the
// therapy's full catalog.
func BuildUserStats(
	rows []models.UserProgress,
	steps map[uint]models.Step,
	modules map[uint]models.Module,
	therapies map[uint]models.Therapy,
) UserStats {
	groups := make(map[uint]*userTherapyAgg)
	var activity []ActivityEntry

	for _, row := range rows {
		step, ok := steps[row.StepID]
		if !ok {
			continue
		}
		module, ok := modules[step.ModuleID]
		if !ok {
			continue
		}
		therapy, ok := therapies[module.TherapyID]
		if !ok {
			continue
		}

		group, ok := groups[therapy.ID]
		if !ok {
			group = &userTherapyAgg{
				therapy: therapy,
				steps:   make(map[uint]bool),
				modules: make(map[uint]*userModuleAgg),
			}
			groups[therapy.ID] = group
		}

		moduleAgg, ok := group.modules[module.ID]
		if !ok {
			moduleAgg = &userModuleAgg{
				module: module,
				steps:  make(map[uint]bool),
			}
			group.modules[module.ID] = moduleAgg
		}

		group.steps[step.ID] = true
		moduleAgg.steps[step.ID] = true

		if row.Status == models.ProgressCompleted {
			group.completed++
			moduleAgg.completed++

			if row.CompletedAt != nil {
				activity = append(activity, ActivityEntry{
					StepTitle:    step.Title,
					TherapyTitle: therapy.Title,
					CompletedAt:  *row.CompletedAt,
				})
			}
		}
	}

	stats := UserStats{
		TherapyProgress: []TherapyProgressEntry{},
		ModuleProgress:  []ModuleProgressEntry{},
		RecentActivity:  []ActivityEntry{},
	}

	therapyIDs := make([]uint, 0, len(groups))
	for id := range groups {
		therapyIDs = append(therapyIDs, id)
	}
	sort.Slice(therapyIDs, func(i, j int) bool { return therapyIDs[i] < therapyIDs[j] })

	percentageSum := 0
	for _, therapyID := range therapyIDs {
		group := groups[therapyID]

		moduleEntries := make([]ModuleProgressEntry, 0, len(group.modules))
		for _, moduleAgg := range group.modules {
			moduleEntries = append(moduleEntries, ModuleProgressEntry{
				ModuleID:           moduleAgg.module.ID,
				ModuleTitle:        moduleAgg.module.Title,
				TherapyID:          therapyID,
				CompletedSteps:     moduleAgg.completed,
				TotalSteps:         len(moduleAgg.steps),
				ProgressPercentage: percentage(moduleAgg.completed, len(moduleAgg.steps)),
			})
		}
		sort.Slice(moduleEntries, func(i, j int) bool {
			a, b := group.modules[moduleEntries[i].ModuleID].module, group.modules[moduleEntries[j].ModuleID].module
			if a.OrderIndex != b.OrderIndex {
				return a.OrderIndex < b.OrderIndex
			}
			return a.ID < b.ID
		})

		entry := TherapyProgressEntry{
			TherapyID:          therapyID,
			TherapyTitle:       group.therapy.Title,
			CompletedSteps:     group.completed,
			TotalSteps:         len(group.steps),
			ProgressPercentage: percentage(group.completed, len(group.steps)),
			Modules:            moduleEntries,
		}

		stats.TotalStepsCompleted += group.completed
		stats.TherapyProgress = append(stats.TherapyProgress, entry)
		stats.ModuleProgress = append(stats.ModuleProgress, moduleEntries...)

		percentageSum += entry.ProgressPercentage
		if entry.ProgressPercentage == 100 {
			stats.OverallStats.TotalTherapiesCompleted++
		}
	}

	stats.OverallStats.TotalTherapiesStarted = len(therapyIDs)
	if len(therapyIDs) > 0 {
		stats.OverallStats.AverageCompletionRate = int(math.Round(float64(percentageSum) / float64(len(therapyIDs))))
	}

	// Most recent first; ties keep encounter order
	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].CompletedAt.After(activity[j].CompletedAt)
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	if activity != nil {
		stats.RecentActivity = activity
	}

	return stats
}

// TherapyStats is the per-therapy statistics response
type TherapyStats struct {
	TherapyInfo TherapyInfo      `json:"therapyInfo"`
	UserStats   TherapyUserStats `json:"userStats"`
	ModuleStats []ModuleStat     `json:"moduleStats"`
	StepStats   []StepStat       `json:"stepStats"`
	TimeStats   TimeStats        `json:"timeStats"`
}

// TherapyInfo identifies the therapy and its catalog size
type TherapyInfo struct {
	TherapyID    uint   `json:"therapyId"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	TotalSteps   int    `json:"totalSteps"`
	TotalModules int    `json:"totalModules"`
}

// TherapyUserStats aggregates user participation in a therapy
type TherapyUserStats struct {
	TotalUsersStarted   int `json:"totalUsersStarted"`
	TotalUsersCompleted int `json:"totalUsersCompleted"`
	CompletionRate      int `json:"completionRate"`
}

// ModuleStat is a per-module completion breakdown
type ModuleStat struct {
	ModuleID       uint   `json:"moduleId"`
	ModuleTitle    string `json:"moduleTitle"`
	OrderIndex     int    `json:"orderIndex"`
	TotalSteps     int    `json:"totalSteps"`
	Completions    int    `json:"completions"`
	UsersCompleted int    `json:"usersCompleted"`
}

// StepStat is a per-step completion breakdown
type StepStat struct {
	StepID      uint   `json:"stepId"`
	StepTitle   string `json:"stepTitle"`
	ModuleID    uint   `json:"moduleId"`
	OrderIndex  int    `json:"orderIndex"`
	Completions int    `json:"completions"`
}

// TimeStats carries the average time to completion in hours
type TimeStats struct {
	AverageCompletionTime float64 `json:"averageCompletionTime"`
}

type therapyUserAgg struct {
	completedSteps map[uint]bool
	first, last    *time.Time
}

// BuildTherapyStats folds all progress rows on a therapy's steps into
// participation and completion breakdowns. Unlike per-user statistics
// the step totals come from the therapy's real catalog, so adding an
// uncompleted step lowers the completion rate.
func BuildTherapyStats(
	therapy models.Therapy,
	modules []models.Module,
	steps []models.Step,
	rows []models.UserProgress,
) TherapyStats {
	stepsByID := make(map[uint]models.Step, len(steps))
	stepsByModule := make(map[uint][]models.Step)
	for _, step := range steps {
		stepsByID[step.ID] = step
		stepsByModule[step.ModuleID] = append(stepsByModule[step.ModuleID], step)
	}

	users := make(map[uint]*therapyUserAgg)
	stepCompletions := make(map[uint]int)

	for _, row := range rows {
		if _, ok := stepsByID[row.StepID]; !ok {
			continue
		}

		userAgg, ok := users[row.UserID]
		if !ok {
			userAgg = &therapyUserAgg{completedSteps: make(map[uint]bool)}
			users[row.UserID] = userAgg
		}

		if row.Status != models.ProgressCompleted {
			continue
		}

		userAgg.completedSteps[row.StepID] = true
		stepCompletions[row.StepID]++

		if row.CompletedAt != nil {
			if userAgg.first == nil || row.CompletedAt.Before(*userAgg.first) {
				t := *row.CompletedAt
				userAgg.first = &t
			}
			if userAgg.last == nil || row.CompletedAt.After(*userAgg.last) {
				t := *row.CompletedAt
				userAgg.last = &t
			}
		}
	}

	stats := TherapyStats{
		TherapyInfo: TherapyInfo{
			TherapyID:    therapy.ID,
			Title:        therapy.Title,
			Category:     therapy.Category,
			TotalSteps:   len(steps),
			TotalModules: len(modules),
		},
		ModuleStats: []ModuleStat{},
		StepStats:   []StepStat{},
	}

	// User participation
	var completionSpans []float64
	for _, userAgg := range users {
		stats.UserStats.TotalUsersStarted++

		if len(steps) > 0 && len(userAgg.completedSteps) == len(steps) {
			stats.UserStats.TotalUsersCompleted++
			if userAgg.first != nil && userAgg.last != nil {
				completionSpans = append(completionSpans, userAgg.last.Sub(*userAgg.first).Hours())
			}
		}
	}
	stats.UserStats.CompletionRate = percentage(stats.UserStats.TotalUsersCompleted, stats.UserStats.TotalUsersStarted)

	if len(completionSpans) > 0 {
		sum := 0.0
		for _, span := range completionSpans {
			sum += span
		}
		stats.TimeStats.AverageCompletionTime = math.Round(sum/float64(len(completionSpans))*100) / 100
	}

	// Per-module and per-step breakdowns follow catalog order
	ordered := make([]models.Module, len(modules))
	copy(ordered, modules)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].OrderIndex != ordered[j].OrderIndex {
			return ordered[i].OrderIndex < ordered[j].OrderIndex
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, module := range ordered {
		moduleSteps := make([]models.Step, len(stepsByModule[module.ID]))
		copy(moduleSteps, stepsByModule[module.ID])
		sort.Slice(moduleSteps, func(i, j int) bool {
			if moduleSteps[i].OrderIndex != moduleSteps[j].OrderIndex {
				return moduleSteps[i].OrderIndex < moduleSteps[j].OrderIndex
			}
			return moduleSteps[i].ID < moduleSteps[j].ID
		})

		moduleStat := ModuleStat{
			ModuleID:    module.ID,
			ModuleTitle: module.Title,
			OrderIndex:  module.OrderIndex,
			TotalSteps:  len(moduleSteps),
		}

		for _, step := range moduleSteps {
			moduleStat.Completions += stepCompletions[step.ID]
			stats.StepStats = append(stats.StepStats, StepStat{
				StepID:      step.ID,
				StepTitle:   step.Title,
				ModuleID:    module.ID,
				OrderIndex:  step.OrderIndex,
				Completions: stepCompletions[step.ID],
			})
		}

		if len(moduleSteps) > 0 {
			for _, userAgg := range users {
				completedAll := true
				for _, step := range moduleSteps {
					if !userAgg.completedSteps[step.ID] {
						completedAll = false
						break
					}
				}
				if completedAll {
					moduleStat.UsersCompleted++
				}
			}
		}

		stats.ModuleStats = append(stats.ModuleStats, moduleStat)
	}

	return stats
}
