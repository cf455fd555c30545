package form

// RenderedOption is an option paired with its effective style.
type RenderedOption struct {
	Option Option
	Style  EffectiveTextStyle
}

// RenderedQuestion is a placed question paired with its effective styles.
type RenderedQuestion struct {
	Question PlacedQuestion
	Index    int
	Selected bool
	Style    EffectiveTextStyle
	Options  []RenderedOption
}

// RenderedSection is a section with its member questions in section order.
type RenderedSection struct {
	Section   Section
	Style     EffectiveSectionStyle
	Questions []RenderedQuestion
}

// Layout is the read model a presentation layer draws: sections first, in
// creation order, then every question that belongs to no section, in placed
// order. It is rebuilt on every call and never cached.
type Layout struct {
	Sections   []RenderedSection
	Ungrouped  []RenderedQuestion
	Global     GlobalStyle
	SelectedID string
}

// Len returns the number of questions in the layout.
func (l Layout) Len() int {
	n := len(l.Ungrouped)
	for _, s := range l.Sections {
		n += len(s.Questions)
	}
	return n
}

// Layout resolves every element's effective style against the current state.
func (f *Form) Layout() Layout {
	selectedID := ""
	if _, ok := f.Selected(); ok {
		selectedID = f.selected
	}

	layout := Layout{
		Sections:   make([]RenderedSection, 0, len(f.sections)),
		Global:     f.global.Clone(),
		SelectedID: selectedID,
	}

	grouped := make(map[string]struct{})
	for _, section := range f.sections {
		rendered := RenderedSection{
			Section:   section.Clone(),
			Style:     f.global.ResolveSection(section.Style),
			Questions: make([]RenderedQuestion, 0, len(section.QuestionIDs)),
		}
		for _, qid := range section.QuestionIDs {
			i := f.questionIndex(qid)
			if i < 0 {
				continue
			}
			grouped[qid] = struct{}{}
			rendered.Questions = append(rendered.Questions, f.renderQuestion(i, selectedID))
		}
		layout.Sections = append(layout.Sections, rendered)
	}

	for i, q := range f.questions {
		if _, ok := grouped[q.ID]; ok {
			continue
		}
		layout.Ungrouped = append(layout.Ungrouped, f.renderQuestion(i, selectedID))
	}
	return layout
}

func (f *Form) renderQuestion(i int, selectedID string) RenderedQuestion {
	q := f.questions[i]
	rendered := RenderedQuestion{
		Question: q.Clone(),
		Index:    i,
		Selected: q.ID == selectedID,
		Style:    f.global.ResolveQuestion(q.Style),
	}
	if len(q.Options) > 0 {
		rendered.Options = make([]RenderedOption, len(q.Options))
		for j, opt := range q.Options {
			rendered.Options[j] = RenderedOption{
				Option: rendered.Question.Options[j],
				Style:  f.global.ResolveOption(opt.Style),
			}
		}
	}
	return rendered
}
