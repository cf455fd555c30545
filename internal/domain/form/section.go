package form

// Section groups placed questions by reference. QuestionIDs never owns the
// questions; the form's placed list does.
type Section struct {
	ID          string
	Title       string
	QuestionIDs []string
	Style       *SectionStyle
}

// Contains reports whether the section references questionID.
func (s Section) Contains(questionID string) bool {
	return indexOf(s.QuestionIDs, questionID) >= 0
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := Section{
		ID:          s.ID,
		Title:       s.Title,
		QuestionIDs: append([]string(nil), s.QuestionIDs...),
	}
	if s.Style != nil {
		style := s.Style.Clone()
		out.Style = &style
	}
	return out
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
