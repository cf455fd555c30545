package form

import (
	"fmt"

	"github.com/alexisbeaulieu97/formsmith/internal/layering"
)

// TextAlign enumerates horizontal alignment values for question and option text.
type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// FlexDirection enumerates how a section lays out its questions.
type FlexDirection string

const (
	FlexDirectionRow    FlexDirection = "row"
	FlexDirectionColumn FlexDirection = "column"
)

// FontWeightBold is the effective weight produced by the bold rule.
const FontWeightBold = "bold"

// TextStyle is the shape shared by question and option styles. Every field is
// optional: nil means unset, which is distinct from a pointer to "".
type TextStyle struct {
	FontColor  *string
	FontSize   *string
	FontWeight *string
	TextAlign  *TextAlign
	IsBold     *bool
}

// QuestionStyle overrides the global question style for one placed question.
type QuestionStyle = TextStyle

// OptionStyle overrides the global option style for one option.
type OptionStyle = TextStyle

// SectionStyle overrides the global section style for one section.
type SectionStyle struct {
	FlexDirection   *FlexDirection
	BackgroundColor *string
	BorderColor     *string
	BorderWidth     *string
	BorderRadius    *string
	Padding         *string
}

// GlobalStyle is the base layer of the cascade. A stored GlobalStyle always
// has every field set; the same type doubles as a partial patch for
// UpdateGlobalStyle, where nil fields are left untouched.
type GlobalStyle struct {
	Question QuestionStyle
	Option   OptionStyle
	Section  SectionStyle
}

// DefaultGlobalStyle returns the session-start defaults.
func DefaultGlobalStyle() GlobalStyle {
	return GlobalStyle{
		Question: TextStyle{
			FontColor:  String("#333333"),
			FontSize:   String("16px"),
			FontWeight: String("500"),
			TextAlign:  Align(TextAlignLeft),
			IsBold:     Bool(false),
		},
		Option: TextStyle{
			FontColor:  String("#555555"),
			FontSize:   String("14px"),
			FontWeight: String("400"),
			TextAlign:  Align(TextAlignLeft),
			IsBold:     Bool(false),
		},
		Section: SectionStyle{
			FlexDirection:   Direction(FlexDirectionColumn),
			BackgroundColor: String("#f9f9f9"),
			BorderColor:     String("#e0e0e0"),
			BorderWidth:     String("1px"),
			BorderRadius:    String("8px"),
			Padding:         String("16px"),
		},
	}
}

// String returns a pointer to v for populating optional style fields.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Align returns a pointer to v.
func Align(v TextAlign) *TextAlign { return &v }

// Direction returns a pointer to v.
func Direction(v FlexDirection) *FlexDirection { return &v }

// IsEmpty reports whether no field is set.
func (s TextStyle) IsEmpty() bool {
	return s.FontColor == nil && s.FontSize == nil && s.FontWeight == nil && s.TextAlign == nil && s.IsBold == nil
}

// Merge returns s with every field set on patch overwritten.
func (s TextStyle) Merge(patch TextStyle) TextStyle {
	return layering.Merge(patch, s)
}

// Clone returns a copy sharing no pointers with s.
func (s TextStyle) Clone() TextStyle {
	return layering.Clone(s)
}

// Validate rejects enumerated fields holding values outside their set.
func (s TextStyle) Validate() error {
	if s.TextAlign == nil {
		return nil
	}
	switch *s.TextAlign {
	case TextAlignLeft, TextAlignCenter, TextAlignRight:
		return nil
	default:
		return newInvalidInputError("invalid text alignment", map[string]interface{}{
			"text_align": string(*s.TextAlign),
		})
	}
}

// IsEmpty reports whether no field is set.
func (s SectionStyle) IsEmpty() bool {
	return s.FlexDirection == nil && s.BackgroundColor == nil && s.BorderColor == nil &&
		s.BorderWidth == nil && s.BorderRadius == nil && s.Padding == nil
}

// Merge returns s with every field set on patch overwritten.
func (s SectionStyle) Merge(patch SectionStyle) SectionStyle {
	return layering.Merge(patch, s)
}

// Clone returns a copy sharing no pointers with s.
func (s SectionStyle) Clone() SectionStyle {
	return layering.Clone(s)
}

// Validate rejects enumerated fields holding values outside their set.
func (s SectionStyle) Validate() error {
	if s.FlexDirection == nil {
		return nil
	}
	switch *s.FlexDirection {
	case FlexDirectionRow, FlexDirectionColumn:
		return nil
	default:
		return newInvalidInputError("invalid flex direction", map[string]interface{}{
			"flex_direction": string(*s.FlexDirection),
		})
	}
}

// Merge applies patch field by field to each sub-style independently.
func (g GlobalStyle) Merge(patch GlobalStyle) GlobalStyle {
	return layering.Merge(patch, g)
}

// Clone returns a copy sharing no pointers with g.
func (g GlobalStyle) Clone() GlobalStyle {
	return layering.Clone(g)
}

// Validate checks the enumerated fields of every sub-style.
func (g GlobalStyle) Validate() error {
	if err := g.Question.Validate(); err != nil {
		return err
	}
	if err := g.Option.Validate(); err != nil {
		return err
	}
	return g.Section.Validate()
}

// Complete reports an error naming the first unset field. Only a complete
// GlobalStyle can serve as the base layer.
func (g GlobalStyle) Complete() error {
	check := func(prefix string, s TextStyle) error {
		fields := []struct {
			name string
			set  bool
		}{
			{"fontColor", s.FontColor != nil},
			{"fontSize", s.FontSize != nil},
			{"fontWeight", s.FontWeight != nil},
			{"textAlign", s.TextAlign != nil},
			{"isBold", s.IsBold != nil},
		}
		for _, f := range fields {
			if !f.set {
				return newMissingFieldError(fmt.Sprintf("%s.%s", prefix, f.name))
			}
		}
		return nil
	}
	if err := check("questionStyle", g.Question); err != nil {
		return err
	}
	if err := check("optionStyle", g.Option); err != nil {
		return err
	}
	s := g.Section
	sectionFields := []struct {
		name string
		set  bool
	}{
		{"flexDirection", s.FlexDirection != nil},
		{"backgroundColor", s.BackgroundColor != nil},
		{"borderColor", s.BorderColor != nil},
		{"borderWidth", s.BorderWidth != nil},
		{"borderRadius", s.BorderRadius != nil},
		{"padding", s.Padding != nil},
	}
	for _, f := range sectionFields {
		if !f.set {
			return newMissingFieldError("sectionStyle." + f.name)
		}
	}
	return nil
}
