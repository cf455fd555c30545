package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

// Describe writes the layout as plain text, one element per line with its
// effective style. The output carries no escape codes and is stable for a
// given layout, so two descriptions can be diffed line by line.
func Describe(layout form.Layout) string {
	var b strings.Builder

	g := layout.Global
	fmt.Fprintf(&b, "global question %s\n", describeText(g.ResolveQuestion(nil)))
	fmt.Fprintf(&b, "global option %s\n", describeText(g.ResolveOption(nil)))
	fmt.Fprintf(&b, "global section %s\n", describeSection(g.ResolveSection(nil)))

	for _, section := range layout.Sections {
		fmt.Fprintf(&b, "section %q %s\n", section.Section.Title, describeSection(section.Style))
		for _, q := range section.Questions {
			describeQuestion(&b, "  ", q)
		}
	}
	if len(layout.Ungrouped) > 0 {
		b.WriteString("ungrouped\n")
		for _, q := range layout.Ungrouped {
			describeQuestion(&b, "  ", q)
		}
	}
	return b.String()
}

func describeQuestion(b *strings.Builder, indent string, q form.RenderedQuestion) {
	marker := " "
	if q.Selected {
		marker = "*"
	}
	fmt.Fprintf(b, "%s%s %d. %s %q %s\n", indent, marker, q.Index+1, q.Question.Type, q.Question.Text, describeText(q.Style))
	for _, opt := range q.Options {
		fmt.Fprintf(b, "%s    - %q %s\n", indent, opt.Option.Text, describeText(opt.Style))
	}
}

func describeText(s form.EffectiveTextStyle) string {
	bold := ""
	if s.Bold {
		bold = " bold"
	}
	return fmt.Sprintf("[color=%s size=%s weight=%s align=%s%s]", s.FontColor, s.FontSize, s.FontWeight, s.TextAlign, bold)
}

func describeSection(s form.EffectiveSectionStyle) string {
	return fmt.Sprintf("[direction=%s background=%s border=%s/%s/%s padding=%q]",
		s.FlexDirection, s.BackgroundColor, s.BorderWidth, s.BorderColor, s.BorderRadius, s.Padding)
}
