package review

// Profile is the student input to the generator. It is passed by value and
// never stored by this package.
type Profile struct {
	Name          string   `json:"name"`
	Weaknesses    []string `json:"weaknesses"`
	Strategy      Strategy `json:"strategy"`
	TotalDays     int      `json:"total_days"`
	DaysUntilExam int      `json:"days_until_exam"`
}

// Plan is a generated review plan. Exactly one of the schedule sections is
// set, matching Strategy. A Plan is a plain tree of values and serializes
// to JSON without cycles.
type Plan struct {
	Strategy    Strategy             `json:"strategy"`
	Title       string               `json:"title"`
	Student     string               `json:"student,omitempty"`
	TotalDays   int                  `json:"total_days,omitempty"`
	Weakness    *WeaknessSchedule    `json:"weakness_focused,omitempty"`
	Exam        *ExamSchedule        `json:"exam_preparation,omitempty"`
	Integration *IntegrationSchedule `json:"concept_integration,omitempty"`
}

// WeaknessSchedule is the week-by-week weakness_focused schedule.
type WeaknessSchedule struct {
	Weaknesses     []string `json:"weaknesses"`
	Foundation     []string `json:"foundation"`
	Weeks          []Week   `json:"weeks"`
	AssessmentDays []int    `json:"assessment_days"`
}

// Week is one week bucket. Weeks past the last weak topic have no topics.
type Week struct {
	Week     int             `json:"week"`
	Label    string          `json:"label"`
	Goal     string          `json:"goal"`
	Topics   []string        `json:"topics"`
	Days     []DayAssignment `json:"days"`
	Practice string          `json:"practice"`
}

// DayAssignment lists the topics scheduled for one day.
type DayAssignment struct {
	Day    int      `json:"day"`
	Topics []string `json:"topics"`
}

// ExamSchedule is the fixed three-phase exam countdown.
type ExamSchedule struct {
	TotalPhases  int     `json:"total_phases"`
	DaysPerPhase int     `json:"days_per_phase"`
	Phases       []Phase `json:"phases"`
	MockExamDays []int   `json:"mock_exam_days"`
}

// Phase is one block of the exam countdown.
type Phase struct {
	Name         string      `json:"name"`
	Focus        []string    `json:"focus"`
	Days         []DailyPlan `json:"days"`
	PracticeType string      `json:"practice_type"`
}

// DailyPlan is one day of an exam phase.
type DailyPlan struct {
	Day        int      `json:"day"`
	Topics     []string `json:"topics"`
	TopicNames []string `json:"topic_names"`
	Duration   string   `json:"duration"`
	Practice   Practice `json:"practice"`
}

// Practice is the exercise advice attached to a day.
type Practice struct {
	Basic    string `json:"basic"`
	Advanced string `json:"advanced"`
	Review   string `json:"review"`
}

// IntegrationSchedule is the concept_integration cluster walk.
type IntegrationSchedule struct {
	Clusters []ClusterPath `json:"clusters"`
	Projects []string      `json:"projects"`
}

// ClusterPath is one concept cluster, its topics ordered by how many
// prerequisites each has.
type ClusterPath struct {
	Cluster     string         `json:"cluster"`
	Description string         `json:"description"`
	Path        []ClusterTopic `json:"path"`
	Activities  []string       `json:"activities"`
}

// ClusterTopic is a topic within a cluster path.
type ClusterTopic struct {
	ID                string `json:"concept"`
	Name              string `json:"name"`
	PrerequisiteCount int    `json:"prerequisite_count"`
}
