package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQuestionOverrideWinsPerField(t *testing.T) {
	g := DefaultGlobalStyle()

	got := g.ResolveQuestion(&TextStyle{FontColor: String("#ff0000")})

	assert.Equal(t, "#ff0000", got.FontColor)
	assert.Equal(t, "16px", got.FontSize)
	assert.Equal(t, "500", got.FontWeight)
	assert.Equal(t, TextAlignLeft, got.TextAlign)
	assert.False(t, got.Bold)
}

func TestResolveWithoutOverrideReturnsGlobal(t *testing.T) {
	g := DefaultGlobalStyle()

	q := g.ResolveQuestion(nil)
	o := g.ResolveOption(nil)
	s := g.ResolveSection(nil)

	assert.Equal(t, EffectiveTextStyle{FontColor: "#333333", FontSize: "16px", FontWeight: "500", TextAlign: TextAlignLeft}, q)
	assert.Equal(t, EffectiveTextStyle{FontColor: "#555555", FontSize: "14px", FontWeight: "400", TextAlign: TextAlignLeft}, o)
	assert.Equal(t, EffectiveSectionStyle{
		FlexDirection:   FlexDirectionColumn,
		BackgroundColor: "#f9f9f9",
		BorderColor:     "#e0e0e0",
		BorderWidth:     "1px",
		BorderRadius:    "8px",
		Padding:         "16px",
	}, s)
}

func TestBoldRule(t *testing.T) {
	tests := []struct {
		name       string
		globalBold bool
		override   *TextStyle
		wantBold   bool
		wantWeight string
	}{
		{"element bold over plain global", false, &TextStyle{IsBold: Bool(true)}, true, FontWeightBold},
		{"explicit false cannot undo bold global", true, &TextStyle{IsBold: Bool(false)}, true, FontWeightBold},
		{"unset inherits bold global", true, &TextStyle{}, true, FontWeightBold},
		{"neither bold keeps numeric weight", false, &TextStyle{FontWeight: String("700")}, false, "700"},
		{"bold beats explicit weight", false, &TextStyle{FontWeight: String("300"), IsBold: Bool(true)}, true, FontWeightBold},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := DefaultGlobalStyle()
			g.Question.IsBold = Bool(tt.globalBold)

			got := g.ResolveQuestion(tt.override)
			assert.Equal(t, tt.wantBold, got.Bold)
			assert.Equal(t, tt.wantWeight, got.FontWeight)
		})
	}
}

func TestResolveSectionPartialOverride(t *testing.T) {
	g := DefaultGlobalStyle()

	got := g.ResolveSection(&SectionStyle{FlexDirection: Direction(FlexDirectionRow), Padding: String("")})

	assert.Equal(t, FlexDirectionRow, got.FlexDirection)
	assert.Equal(t, "", got.Padding)
	assert.Equal(t, "#e0e0e0", got.BorderColor)
}

func TestResolveEffectiveStyleDispatch(t *testing.T) {
	g := DefaultGlobalStyle()

	option, err := ResolveEffectiveStyle(g, CategoryOption, TextStyle{FontSize: String("12px")})
	require.NoError(t, err)
	assert.Equal(t, "12px", option.Text.FontSize)
	assert.Equal(t, "#555555", option.Text.FontColor)

	section, err := ResolveEffectiveStyle(g, CategorySection, &SectionStyle{BorderWidth: String("2px")})
	require.NoError(t, err)
	assert.Equal(t, "2px", section.Section.BorderWidth)

	question, err := ResolveEffectiveStyle(g, CategoryQuestion, nil)
	require.NoError(t, err)
	assert.Equal(t, "#333333", question.Text.FontColor)

	_, err = ResolveEffectiveStyle(g, CategorySection, TextStyle{})
	assert.True(t, IsInvalidInput(err))

	_, err = ResolveEffectiveStyle(g, Category("banner"), nil)
	assert.True(t, IsInvalidInput(err))
}

func TestResolveIsPure(t *testing.T) {
	g := DefaultGlobalStyle()
	override := &TextStyle{FontColor: String("#ff0000")}

	first := g.ResolveQuestion(override)
	second := g.ResolveQuestion(override)

	assert.Equal(t, first, second)
	assert.Equal(t, "#ff0000", *override.FontColor)
	assert.Nil(t, override.FontSize)
	assert.Equal(t, DefaultGlobalStyle(), g)
}
