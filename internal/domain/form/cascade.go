package form

import (
	"fmt"

	"github.com/alexisbeaulieu97/formsmith/internal/layering"
)

// Category selects which global layer an element resolves against.
type Category string

const (
	CategoryQuestion Category = "question"
	CategoryOption   Category = "option"
	CategorySection  Category = "section"
)

// EffectiveTextStyle is a fully resolved question or option style.
type EffectiveTextStyle struct {
	FontColor  string
	FontSize   string
	FontWeight string
	TextAlign  TextAlign
	// Bold is true when either layer set isBold; FontWeight is then "bold".
	Bold bool
}

// EffectiveSectionStyle is a fully resolved section style.
type EffectiveSectionStyle struct {
	FlexDirection   FlexDirection
	BackgroundColor string
	BorderColor     string
	BorderWidth     string
	BorderRadius    string
	Padding         string
}

// EffectiveStyle is the result of ResolveEffectiveStyle. Text is populated for
// the question and option categories, Section for the section category.
type EffectiveStyle struct {
	Category Category
	Text     EffectiveTextStyle
	Section  EffectiveSectionStyle
}

// ResolveQuestion merges override over the global question style.
func (g GlobalStyle) ResolveQuestion(override *QuestionStyle) EffectiveTextStyle {
	return resolveText(override, g.Question)
}

// ResolveOption merges override over the global option style.
func (g GlobalStyle) ResolveOption(override *OptionStyle) EffectiveTextStyle {
	return resolveText(override, g.Option)
}

// ResolveSection merges override over the global section style.
func (g GlobalStyle) ResolveSection(override *SectionStyle) EffectiveSectionStyle {
	base := g.Section
	merged := base
	if override != nil {
		merged = layering.Merge(*override, base)
	}
	return EffectiveSectionStyle{
		FlexDirection:   deref(merged.FlexDirection),
		BackgroundColor: deref(merged.BackgroundColor),
		BorderColor:     deref(merged.BorderColor),
		BorderWidth:     deref(merged.BorderWidth),
		BorderRadius:    deref(merged.BorderRadius),
		Padding:         deref(merged.Padding),
	}
}

// ResolveEffectiveStyle dispatches on category. override may be nil, a
// TextStyle (question, option) or a SectionStyle (section), by value or
// pointer. A mismatched override is rejected with INVALID_INPUT.
func ResolveEffectiveStyle(global GlobalStyle, category Category, override any) (EffectiveStyle, error) {
	switch category {
	case CategoryQuestion, CategoryOption:
		var textOverride *TextStyle
		switch v := override.(type) {
		case nil:
		case TextStyle:
			textOverride = &v
		case *TextStyle:
			textOverride = v
		default:
			return EffectiveStyle{}, mismatchedOverride(category, override)
		}
		base := global.Question
		if category == CategoryOption {
			base = global.Option
		}
		return EffectiveStyle{Category: category, Text: resolveText(textOverride, base)}, nil
	case CategorySection:
		var sectionOverride *SectionStyle
		switch v := override.(type) {
		case nil:
		case SectionStyle:
			sectionOverride = &v
		case *SectionStyle:
			sectionOverride = v
		default:
			return EffectiveStyle{}, mismatchedOverride(category, override)
		}
		return EffectiveStyle{Category: category, Section: global.ResolveSection(sectionOverride)}, nil
	default:
		return EffectiveStyle{}, newInvalidInputError("unknown style category", map[string]interface{}{
			"category": string(category),
		})
	}
}

func resolveText(override *TextStyle, base TextStyle) EffectiveTextStyle {
	merged := base
	if override != nil {
		merged = layering.Merge(*override, base)
	}

	// Bold applies when either layer asks for it, even if the element
	// explicitly sets isBold=false over a bold global.
	bold := (override != nil && override.IsBold != nil && *override.IsBold) ||
		(base.IsBold != nil && *base.IsBold)

	weight := deref(merged.FontWeight)
	if bold {
		weight = FontWeightBold
	}
	return EffectiveTextStyle{
		FontColor:  deref(merged.FontColor),
		FontSize:   deref(merged.FontSize),
		FontWeight: weight,
		TextAlign:  deref(merged.TextAlign),
		Bold:       bold,
	}
}

func mismatchedOverride(category Category, override any) *DomainError {
	return newInvalidInputError("override does not match style category", map[string]interface{}{
		"category": string(category),
		"override": fmt.Sprintf("%T", override),
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
