package review

import "slices"

// Config holds the fixed templates the strategies fill in. Every topic ID
// named here must exist in the graph the generator is given.
type Config struct {
	// DefaultTotalDays is used when a profile sets no positive TotalDays.
	DefaultTotalDays int

	// DaysPerWeek is the size of a weakness_focused week bucket.
	DaysPerWeek int

	// FoundationCap is how many foundation topics week one covers.
	FoundationCap int

	// AssessmentDays are the weakness_focused checkpoints. They are fixed
	// and do not adapt to the plan length.
	AssessmentDays []int

	Exam        ExamConfig
	Integration IntegrationConfig

	// Roadmap is the three-stage browsing roadmap of review topics.
	Roadmap []StageSpec
}

// ExamConfig describes the exam_preparation countdown.
type ExamConfig struct {
	Phases       []PhaseSpec
	DaysPerPhase int
	MockExamDays []int

	// SessionLength is the suggested study time per day.
	SessionLength string

	// BasicPerTopic and AdvancedPerTopic scale the daily exercise counts.
	BasicPerTopic    int
	AdvancedPerTopic int
}

// PhaseSpec is one fixed exam phase.
type PhaseSpec struct {
	Name         string
	Topics       []string
	PracticeType string
}

// IntegrationConfig describes the concept_integration clusters.
type IntegrationConfig struct {
	Clusters   []ClusterSpec
	Activities []string
	Projects   []string
}

// ClusterSpec is a named group of related topics.
type ClusterSpec struct {
	Name   string
	Topics []string
}

// StageSpec is one roadmap stage.
type StageSpec struct {
	Name   string
	Topics []string
}

// ExamTopics is the full exam roster, used by the final phase.
var ExamTopics = []string{
	"NA1", "NA2", "NA4", // 数与代数核心
	"GG1", "GG2", // 图形几何核心
	"CA1", "CA2", "CA3", // 综合应用
	"SP1", // 统计
}

// DefaultConfig returns the grade-six review templates.
func DefaultConfig() Config {
	return Config{
		DefaultTotalDays: 30,
		DaysPerWeek:      7,
		FoundationCap:    5,
		AssessmentDays:   []int{7, 14, 21, 28},
		Exam: ExamConfig{
			Phases: []PhaseSpec{
				{Name: "第一阶段：知识梳理（第1-10天）", Topics: []string{"NA1", "NA2", "GG1", "GG2"}, PracticeType: "基础题+概念辨析"},
				{Name: "第二阶段：综合提升（第11-20天）", Topics: []string{"NA4", "CA1", "CA2", "CA3"}, PracticeType: "应用题+综合题"},
				{Name: "第三阶段：模拟冲刺（第21-30天）", Topics: slices.Clone(ExamTopics), PracticeType: "模拟卷+错题回顾"},
			},
			DaysPerPhase:     10,
			MockExamDays:     []int{10, 20, 25, 28, 30},
			SessionLength:    "60-90分钟",
			BasicPerTopic:    5,
			AdvancedPerTopic: 2,
		},
		Integration: IntegrationConfig{
			Clusters: []ClusterSpec{
				{Name: "数的扩展", Topics: []string{"N5", "N6", "NA1", "NA2"}},  // 分数→小数→百分数
				{Name: "图形度量", Topics: []string{"G3", "GG1", "GG2"}},        // 面积→圆→立体图形
				{Name: "问题解决", Topics: []string{"NA4", "CA1", "CA2", "CA3"}}, // 方程→各类应用题
			},
			Activities: []string{"专题练习", "跨领域应用题"},
			Projects:   []string{"生活数学项目", "数学建模小任务"},
		},
		Roadmap: []StageSpec{
			{Name: "第一阶段：数与代数系统复习", Topics: []string{"NA1", "NA2", "NA3", "NA4"}},
			{Name: "第二阶段：图形几何深化", Topics: []string{"GG1", "GG2", "GG3"}},
			{Name: "第三阶段：综合能力提升", Topics: []string{"CA1", "CA2", "CA3", "SP1", "SP2"}},
		},
	}
}
