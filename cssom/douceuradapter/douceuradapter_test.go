package douceuradapter_test

import (
	"testing"

	"github.com/npillmayer/cssbuild/cssom"
	"github.com/npillmayer/cssbuild/cssom/douceuradapter"
	"github.com/npillmayer/cssbuild/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.cssom", "cssbuild.selector")
	defer teardown()
	//
	sheet := douceuradapter.NewStyleSheet()
	require.True(t, sheet.Empty())
	err := sheet.AddRule([]cssom.Declaration{
		cssom.Decl("color", "red"),
		{Property: "margin-top", Value: "15px", Important: true},
	},
		selector.ID("main").Class("container"),
		selector.Element("ul").Combine(selector.Child, selector.Element("li")),
	)
	require.NoError(t, err)
	require.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, "#main.container, ul > li", r.Selector())
	assert.Equal(t, []string{"color", "margin-top"}, r.Properties())
	assert.Equal(t, "15px", r.Value("margin-top"))
	assert.Equal(t, "", r.Value("padding"))
	assert.True(t, r.IsImportant("margin-top"))
	assert.False(t, r.IsImportant("color"))
	t.Logf("\n%s", sheet.String())
	assert.Contains(t, sheet.String(), "#main.container, ul > li {")
	assert.Contains(t, sheet.String(), "margin-top: 15px !important;")
}

func TestAddRuleRejectsBrokenSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.cssom", "cssbuild.selector")
	defer teardown()
	//
	sheet := douceuradapter.NewStyleSheet()
	err := sheet.AddRule(nil, selector.Element("p"), selector.PseudoElement("after").Class("x"))
	assert.ErrorIs(t, err, selector.ErrOrder)
	assert.True(t, sheet.Empty(), "no rule should have been added")
	assert.ErrorIs(t, sheet.AddRule(nil), douceuradapter.ErrNoSelector)
}

func TestRoundTripThroughParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbuild.cssom")
	defer teardown()
	//
	sheet := douceuradapter.NewStyleSheet()
	require.NoError(t, sheet.AddRule(
		[]cssom.Declaration{cssom.Decl("display", "none")},
		selector.Element("div").ID("main").Class("container").Class("editable"),
	))
	require.NoError(t, sheet.AddRule(
		[]cssom.Declaration{cssom.Decl("color", "blue")},
		selector.Element("h1").Combine(selector.NextSibling, selector.Element("p").Class("lead")),
	))
	parsed, err := douceuradapter.Parse(sheet.String())
	require.NoError(t, err)
	rules := parsed.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "div#main.container.editable", rules[0].Selector())
	assert.Equal(t, "none", rules[0].Value("display"))
	assert.Equal(t, "h1 + p.lead", rules[1].Selector())
	assert.Equal(t, "blue", rules[1].Value("color"))
}

func TestAppendRules(t *testing.T) {
	a := douceuradapter.NewStyleSheet()
	require.NoError(t, a.AddRule([]cssom.Declaration{cssom.Decl("color", "red")}, selector.Class("a")))
	b, err := douceuradapter.Parse(".b { color: green; }")
	require.NoError(t, err)
	a.AppendRules(b)
	rules := a.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".b", rules[1].Selector())
	assert.Equal(t, "green", rules[1].Value("color"))
}
