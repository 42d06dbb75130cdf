package curriculum_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/mathmap/internal/curriculum"
	"github.com/abhisek/mathmap/internal/topicgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	g, err := curriculum.Build()
	require.NoError(t, err)

	assert.Equal(t, 21, g.Len())
	assert.Len(t, g.ReviewTopics(""), 12)
	assert.Empty(t, g.Stubs())
	assert.NoError(t, g.Validate())
}

func TestBuild_DomainsInDeclarationOrder(t *testing.T) {
	g, err := curriculum.Build()
	require.NoError(t, err)

	want := []string{"数与代数", "图形与几何", "数与代数进阶", "图形与几何深化", "统计与概率基础", "综合应用"}
	assert.Equal(t, want, g.Domains())
}

func TestBuild_AncestorsOfNA1(t *testing.T) {
	g, err := curriculum.Build()
	require.NoError(t, err)

	got, err := g.PrerequisiteAncestors("NA1")
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N2", "N3", "N4", "N5", "N6"}, got)
}

func TestBuild_AncestorsCoverDeclaredPrerequisites(t *testing.T) {
	defs, err := curriculum.LoadDefinitions()
	require.NoError(t, err)
	g, err := curriculum.BuildFrom(defs)
	require.NoError(t, err)

	for _, layer := range []curriculum.Layer{defs.Foundational, defs.Review} {
		for _, d := range layer.Domains {
			for _, spec := range d.Topics {
				anc, err := g.PrerequisiteAncestors(spec.ID)
				require.NoError(t, err)
				if len(spec.Prerequisites) > 0 {
					assert.NotEmpty(t, anc, spec.ID)
				}
				assert.NotContains(t, anc, spec.ID)
				for _, p := range spec.Prerequisites {
					assert.Contains(t, anc, p, "%s should have ancestor %s", spec.ID, p)
					// Transitive: p's own ancestors are ancestors of spec.
					panc, err := g.PrerequisiteAncestors(p)
					require.NoError(t, err)
					for _, a := range panc {
						assert.Contains(t, anc, a, "%s should inherit ancestor %s through %s", spec.ID, a, p)
					}
				}
			}
		}
	}
}

func TestBuild_ReviewFlagAndMetadata(t *testing.T) {
	g, err := curriculum.Build()
	require.NoError(t, err)

	n1, err := g.Topic("N1")
	require.NoError(t, err)
	assert.False(t, n1.IsReview)
	assert.Equal(t, "数与代数", n1.Domain)
	assert.False(t, n1.Mastered)

	na1, err := g.Topic("NA1")
	require.NoError(t, err)
	assert.True(t, na1.IsReview)
	assert.Equal(t, "分数四则混合运算", na1.Name)
	assert.Equal(t, 4, na1.Level)
	assert.Equal(t, []string{"通分", "约分", "运算顺序"}, na1.Keywords)
	assert.Equal(t, []string{"运算顺序错误", "通分不彻底"}, na1.CommonErrors)

	gg2, err := g.Topic("GG2")
	require.NoError(t, err)
	assert.Len(t, gg2.Formulas, 3)

	ca1, err := g.Topic("CA1")
	require.NoError(t, err)
	assert.Equal(t, []string{"浓度问题", "利润问题", "工程问题"}, ca1.ProblemTypes)
	assert.Equal(t, []string{"单位1法", "量率对应", "方程法"}, ca1.Methods)
}

func TestBuild_CrossModuleRelations(t *testing.T) {
	g, err := curriculum.Build()
	require.NoError(t, err)

	want := []topicgraph.Relation{
		{From: "NA2", To: "SP1", Kind: topicgraph.RelationSupports, Weight: 0.8},
		{From: "NA3", To: "GG3", Kind: topicgraph.RelationAppliesTo, Weight: 0.7},
		{From: "NA4", To: "CA1", Kind: topicgraph.RelationSolves, Weight: 0.9},
		{From: "NA4", To: "CA2", Kind: topicgraph.RelationSolves, Weight: 0.9},
		{From: "N5", To: "N6", Kind: topicgraph.RelationConceptTransfer, Weight: 0.6},
		{From: "N5", To: "NA2", Kind: topicgraph.RelationConceptTransfer, Weight: 0.7},
		{From: "G3", To: "GG2", Kind: topicgraph.RelationConceptTransfer, Weight: 0.8},
	}
	rels := g.Relations()
	for _, r := range want {
		assert.Contains(t, rels, r)
	}

	// NA2 -> SP1 is both a prerequisite and a supports link.
	var kinds []topicgraph.RelationKind
	for _, e := range g.Outgoing("NA2") {
		if e.To == "SP1" {
			kinds = append(kinds, e.Kind)
		}
	}
	assert.ElementsMatch(t, []topicgraph.RelationKind{topicgraph.RelationPrerequisite, topicgraph.RelationSupports}, kinds)
}

func TestApplyReviewLayer_Twice(t *testing.T) {
	defs, err := curriculum.LoadDefinitions()
	require.NoError(t, err)
	g, err := curriculum.BuildFrom(defs)
	require.NoError(t, err)
	before := len(g.Relations())

	err = curriculum.ApplyReviewLayer(g, defs.Review)
	require.Error(t, err)
	assert.ErrorIs(t, err, topicgraph.ErrDuplicateTopic)
	assert.Equal(t, before, len(g.Relations()), "failed re-application must not add edges")
	assert.Equal(t, 21, g.Len())
}

func TestApplyReviewLayer_BeforeFoundational(t *testing.T) {
	defs, err := curriculum.LoadDefinitions()
	require.NoError(t, err)

	g := topicgraph.New()
	err = curriculum.ApplyReviewLayer(g, defs.Review)
	require.Error(t, err)

	var unknown *curriculum.UnknownTopicError
	require.True(t, errors.As(err, &unknown), "expected UnknownTopicError, got %v", err)
	assert.Equal(t, 0, g.Len(), "failed layer must leave the graph untouched")
	assert.Empty(t, g.Relations())
}

func TestApplyLayer_UnknownPrerequisite(t *testing.T) {
	layer := curriculum.Layer{
		Name: "broken",
		Domains: []curriculum.DomainSpec{{
			Domain: "d",
			Topics: []curriculum.TopicSpec{
				{ID: "A", Name: "a", Level: 1},
				{ID: "B", Name: "b", Level: 2, Prerequisites: []string{"A", "GHOST"}},
			},
		}},
	}
	g := topicgraph.New()
	err := curriculum.ApplyFoundationalLayer(g, layer)

	var unknown *curriculum.UnknownTopicError
	require.True(t, errors.As(err, &unknown), "expected UnknownTopicError, got %v", err)
	assert.Equal(t, "B", unknown.Topic)
	assert.Equal(t, "GHOST", unknown.Ref)
	assert.Empty(t, g.Stubs())
	assert.Equal(t, 0, g.Len())
}

func TestApplyLayer_CollectsAllProblems(t *testing.T) {
	layer := curriculum.Layer{
		Domains: []curriculum.DomainSpec{{
			Domain: "d",
			Topics: []curriculum.TopicSpec{
				{ID: "A", Name: "", Level: 0},
				{ID: "A", Name: "dup", Level: 1},
			},
		}},
		Relations: []curriculum.RelationSpec{
			{From: "A", To: "Z", Kind: topicgraph.RelationSupports, Weight: 0.5},
			{From: "A", To: "A", Kind: "bogus", Weight: 0.5},
		},
	}
	err := curriculum.ApplyFoundationalLayer(topicgraph.New(), layer)
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{"no name", "level must be > 0", "duplicate", `unknown topic "Z"`, "unknown kind"} {
		assert.Contains(t, msg, want)
	}
}

func TestParseLayer_RejectsUnknownFields(t *testing.T) {
	_, err := curriculum.ParseLayer([]byte(`
name: x
domains:
  - domain: d
    topics:
      - id: A
        name: a
        level: 1
        prereqs: [B]
`))
	assert.Error(t, err)
}

func TestLoadDefinitions_Order(t *testing.T) {
	defs, err := curriculum.LoadDefinitions()
	require.NoError(t, err)

	var ids []string
	for _, d := range defs.Foundational.Domains {
		for _, s := range d.Topics {
			ids = append(ids, s.ID)
		}
	}
	assert.True(t, slices.Equal(ids, []string{"N1", "N2", "N3", "N4", "N5", "N6", "G1", "G2", "G3"}), "got %v", ids)
	assert.Len(t, defs.Review.Relations, 7)
}
