package review

// Strategy selects the algorithm that turns a profile into a plan.
type Strategy int

const (
	WeaknessFocused    Strategy = iota // Rebuild foundations, then one weak topic per week
	ExamPreparation                    // Three fixed 10-day phases before the exam
	ConceptIntegration                 // Topic clusters ordered by prerequisite count
)

// AllStrategies returns every strategy in display order.
func AllStrategies() []Strategy {
	return []Strategy{WeaknessFocused, ExamPreparation, ConceptIntegration}
}

// String returns the wire key of the strategy.
func (s Strategy) String() string {
	switch s {
	case WeaknessFocused:
		return "weakness_focused"
	case ExamPreparation:
		return "exam_preparation"
	case ConceptIntegration:
		return "concept_integration"
	default:
		return "unknown"
	}
}

// Title returns the display title shown to students.
func (s Strategy) Title() string {
	switch s {
	case WeaknessFocused:
		return "弱项突破"
	case ExamPreparation:
		return "考试冲刺"
	case ConceptIntegration:
		return "概念整合"
	default:
		return "未知策略"
	}
}

// ParseStrategy maps a wire key to a Strategy.
func ParseStrategy(key string) (Strategy, error) {
	for _, s := range AllStrategies() {
		if s.String() == key {
			return s, nil
		}
	}
	return 0, &UnsupportedStrategyError{Name: key}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < WeaknessFocused || s > ConceptIntegration {
		return nil, &UnsupportedStrategyError{Name: s.String()}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
