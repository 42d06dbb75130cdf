package review

import "fmt"

// examPreparation emits the fixed countdown. It ignores the profile: the
// phases, rosters and mock exam days never change.
func (gen *Generator) examPreparation() (*Plan, error) {
	cfg := gen.cfg.Exam

	phases := make([]Phase, 0, len(cfg.Phases))
	for _, spec := range cfg.Phases {
		// Topics cut off by the daily split must still exist.
		if _, err := gen.topicNames(spec.Topics); err != nil {
			return nil, fmt.Errorf("exam phase %q: %w", spec.Name, err)
		}
		days, err := gen.dailyPlan(spec.Topics, cfg.DaysPerPhase)
		if err != nil {
			return nil, fmt.Errorf("exam phase %q: %w", spec.Name, err)
		}
		phases = append(phases, Phase{
			Name:         spec.Name,
			Focus:        clone(spec.Topics),
			Days:         days,
			PracticeType: spec.PracticeType,
		})
	}

	return &Plan{
		TotalDays: len(phases) * cfg.DaysPerPhase,
		Exam: &ExamSchedule{
			TotalPhases:  len(phases),
			DaysPerPhase: cfg.DaysPerPhase,
			Phases:       phases,
			MockExamDays: clone(cfg.MockExamDays),
		},
	}, nil
}

// dailyPlan fills every one of days with its slot of topics. Trailing
// topics that do not fit are dropped.
func (gen *Generator) dailyPlan(topics []string, days int) ([]DailyPlan, error) {
	if days <= 0 {
		return []DailyPlan{}, nil
	}
	cfg := gen.cfg.Exam
	result := make([]DailyPlan, 0, days)
	for i, daily := range slots(topics, days) {
		names, err := gen.topicNames(daily)
		if err != nil {
			return nil, err
		}
		result = append(result, DailyPlan{
			Day:        i + 1,
			Topics:     daily,
			TopicNames: names,
			Duration:   cfg.SessionLength,
			Practice: Practice{
				Basic:    fmt.Sprintf("%d道基础题", len(daily)*cfg.BasicPerTopic),
				Advanced: fmt.Sprintf("%d道应用题", len(daily)*cfg.AdvancedPerTopic),
				Review:   "回顾前日错题",
			},
		})
	}
	return result, nil
}
