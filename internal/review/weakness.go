package review

import "fmt"

// weaknessFocused rebuilds the foundations under the weak topics in week
// one, then gives each following week to one weak topic.
func (gen *Generator) weaknessFocused(p Profile) (*Plan, error) {
	totalDays := p.TotalDays
	if totalDays <= 0 {
		totalDays = gen.cfg.DefaultTotalDays
	}

	foundation, err := gen.foundation(p.Weaknesses)
	if err != nil {
		return nil, err
	}

	return &Plan{
		TotalDays: totalDays,
		Weakness: &WeaknessSchedule{
			Weaknesses:     clone(p.Weaknesses),
			Foundation:     foundation,
			Weeks:          gen.organizeByWeek(foundation, p.Weaknesses, totalDays),
			AssessmentDays: clone(gen.cfg.AssessmentDays),
		},
	}, nil
}

// foundation returns the union of prerequisite ancestors of the weak
// topics, in graph insertion order.
func (gen *Generator) foundation(weak []string) ([]string, error) {
	set := make(map[string]bool)
	for _, id := range weak {
		anc, err := gen.graph.PrerequisiteAncestors(id)
		if err != nil {
			return nil, fmt.Errorf("weak topic: %w", err)
		}
		for _, a := range anc {
			set[a] = true
		}
	}

	result := make([]string, 0, len(set))
	for _, id := range gen.graph.IDs() {
		if set[id] {
			result = append(result, id)
		}
	}
	return result, nil
}

// organizeByWeek lays out total/7 weeks (at least one). Week 1 covers the
// first FoundationCap foundation topics; week k >= 2 targets weak topic
// k-2; weeks past the last weak topic are left empty.
func (gen *Generator) organizeByWeek(foundation, weak []string, totalDays int) []Week {
	perWeek := gen.cfg.DaysPerWeek
	weeks := 1
	if totalDays >= perWeek {
		weeks = totalDays / perWeek
	}

	first := foundation[:min(gen.cfg.FoundationCap, len(foundation))]
	schedule := []Week{{
		Week:     1,
		Label:    "第1周：基础巩固",
		Goal:     "夯实弱项知识点的基础",
		Topics:   clone(first),
		Days:     distribute(first, min(perWeek, totalDays)),
		Practice: "基础题+概念判断题",
	}}

	for week := 2; week <= weeks; week++ {
		w := Week{
			Week:   week,
			Label:  fmt.Sprintf("第%d周：专项突破", week),
			Topics: []string{},
			Days:   []DayAssignment{},
		}
		if i := week - 2; i < len(weak) {
			topic := []string{weak[i]}
			w.Goal = fmt.Sprintf("集中攻克第%d个弱项", week-1)
			w.Topics = topic
			w.Days = distribute(topic, perWeek)
			w.Practice = "专项训练题+易错题"
		}
		schedule = append(schedule, w)
	}
	return schedule
}

// distribute assigns topics to at most min(days, len(topics)) days.
func distribute(topics []string, days int) []DayAssignment {
	if len(topics) == 0 || days <= 0 {
		return []DayAssignment{}
	}
	perDay := slots(topics, days)
	result := make([]DayAssignment, 0, min(days, len(topics)))
	for day := 1; day <= min(days, len(topics)); day++ {
		result = append(result, DayAssignment{Day: day, Topics: perDay[day-1]})
	}
	return result
}
