package form

import "strings"

// Form is the mutable state of one form-editing session: the placed
// questions in order, the sections, the global style and the selection.
//
// Form is not safe for concurrent use; callers serialise access (see the
// builder service). Every mutation either applies fully or returns a
// DomainError and leaves the form unchanged.
type Form struct {
	catalog   Catalog
	questions []PlacedQuestion
	sections  []Section
	global    GlobalStyle
	selected  string

	// ids ever assigned, so removed ids are never handed out again
	questionIDs map[string]struct{}
	sectionIDs  map[string]struct{}
}

// New creates an empty form backed by catalog with the default global style.
func New(catalog Catalog) *Form {
	return &Form{
		catalog:     catalog,
		global:      DefaultGlobalStyle(),
		questionIDs: make(map[string]struct{}),
		sectionIDs:  make(map[string]struct{}),
	}
}

// Catalog returns the catalog the form draws templates from.
func (f *Form) Catalog() Catalog {
	return f.catalog
}

// Questions returns a copy of the placed questions in order.
func (f *Form) Questions() []PlacedQuestion {
	out := make([]PlacedQuestion, len(f.questions))
	for i, q := range f.questions {
		out[i] = q.Clone()
	}
	return out
}

// Question returns a copy of the placed question with the given id.
func (f *Form) Question(id string) (PlacedQuestion, error) {
	i := f.questionIndex(id)
	if i < 0 {
		return PlacedQuestion{}, newQuestionNotFoundError(id)
	}
	return f.questions[i].Clone(), nil
}

// Sections returns a copy of the sections in creation order.
func (f *Form) Sections() []Section {
	out := make([]Section, len(f.sections))
	for i, s := range f.sections {
		out[i] = s.Clone()
	}
	return out
}

// Section returns a copy of the section with the given id.
func (f *Form) Section(id string) (Section, error) {
	i := f.sectionIndex(id)
	if i < 0 {
		return Section{}, newSectionNotFoundError(id)
	}
	return f.sections[i].Clone(), nil
}

// SectionOf returns the section referencing questionID, if any.
func (f *Form) SectionOf(questionID string) (Section, bool) {
	i := f.sectionIndexOf(questionID)
	if i < 0 {
		return Section{}, false
	}
	return f.sections[i].Clone(), true
}

// GlobalStyle returns a copy of the current global style.
func (f *Form) GlobalStyle() GlobalStyle {
	return f.global.Clone()
}

// Selected returns the currently selected question.
func (f *Form) Selected() (PlacedQuestion, bool) {
	if f.selected == "" {
		return PlacedQuestion{}, false
	}
	i := f.questionIndex(f.selected)
	if i < 0 {
		return PlacedQuestion{}, false
	}
	return f.questions[i].Clone(), true
}

// AddQuestion places a copy of tpl at the end of the form under id.
func (f *Form) AddQuestion(id string, tpl QuestionTemplate) (PlacedQuestion, error) {
	if err := tpl.Validate(); err != nil {
		return PlacedQuestion{}, err
	}
	if err := f.checkFreshQuestionID(id); err != nil {
		return PlacedQuestion{}, err
	}

	copied := tpl.Clone()
	placed := PlacedQuestion{
		ID:         id,
		TemplateID: copied.ID,
		Text:       copied.Text,
		Type:       copied.Type,
		Options:    copied.Options,
	}
	f.questions = append(f.questions, placed)
	f.questionIDs[id] = struct{}{}
	return placed.Clone(), nil
}

// RemoveQuestion deletes a placed question, drops it from its section and
// clears the selection when it pointed at it.
func (f *Form) RemoveQuestion(id string) error {
	i := f.questionIndex(id)
	if i < 0 {
		return newQuestionNotFoundError(id)
	}

	f.questions = append(f.questions[:i:i], f.questions[i+1:]...)
	for j := range f.sections {
		if f.sections[j].Contains(id) {
			f.sections[j].QuestionIDs = without(f.sections[j].QuestionIDs, id)
		}
	}
	if f.selected == id {
		f.selected = ""
	}
	return nil
}

// UpdateQuestion replaces the stored question with the same id wholesale.
func (f *Form) UpdateQuestion(q PlacedQuestion) (PlacedQuestion, error) {
	i := f.questionIndex(q.ID)
	if i < 0 {
		return PlacedQuestion{}, newQuestionNotFoundError(q.ID)
	}
	if err := q.Validate(); err != nil {
		return PlacedQuestion{}, err
	}
	f.questions[i] = q.Clone()
	return q.Clone(), nil
}

// UpdateQuestionStyle merges patch into the question's style override.
func (f *Form) UpdateQuestionStyle(id string, patch QuestionStyle) (PlacedQuestion, error) {
	i := f.questionIndex(id)
	if i < 0 {
		return PlacedQuestion{}, newQuestionNotFoundError(id)
	}
	if err := patch.Validate(); err != nil {
		return PlacedQuestion{}, withContext(err, map[string]interface{}{"question_id": id})
	}

	var current QuestionStyle
	if f.questions[i].Style != nil {
		current = *f.questions[i].Style
	}
	merged := current.Merge(patch)
	f.questions[i].Style = &merged
	return f.questions[i].Clone(), nil
}

// UpdateOptionStyle merges patch into one option's style override.
func (f *Form) UpdateOptionStyle(questionID, optionID string, patch OptionStyle) (PlacedQuestion, error) {
	i := f.questionIndex(questionID)
	if i < 0 {
		return PlacedQuestion{}, newQuestionNotFoundError(questionID)
	}
	if err := patch.Validate(); err != nil {
		return PlacedQuestion{}, withContext(err, map[string]interface{}{"question_id": questionID, "option_id": optionID})
	}

	q := &f.questions[i]
	for j := range q.Options {
		if q.Options[j].ID != optionID {
			continue
		}
		var current OptionStyle
		if q.Options[j].Style != nil {
			current = *q.Options[j].Style
		}
		merged := current.Merge(patch)
		q.Options[j].Style = &merged
		return q.Clone(), nil
	}
	return PlacedQuestion{}, newDomainError(ErrCodeNotFound, "option not found", nil, map[string]interface{}{
		"question_id": questionID,
		"option_id":   optionID,
	})
}

// UpdateGlobalStyle merges patch into each sub-style independently.
func (f *Form) UpdateGlobalStyle(patch GlobalStyle) (GlobalStyle, error) {
	if err := patch.Validate(); err != nil {
		return GlobalStyle{}, err
	}
	f.global = f.global.Merge(patch)
	return f.global.Clone(), nil
}

// ReplaceGlobalStyle installs a complete global style.
func (f *Form) ReplaceGlobalStyle(style GlobalStyle) error {
	if err := style.Complete(); err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return err
	}
	f.global = style.Clone()
	return nil
}

// CreateSection adds a section referencing questionIDs, in order. The section
// style starts as a copy of the current global section style. The call is
// rejected as a whole when any id is unknown, repeated, or already grouped.
func (f *Form) CreateSection(id, title string, questionIDs []string) (Section, error) {
	if strings.TrimSpace(id) == "" {
		return Section{}, newMissingFieldError("section_id")
	}
	if _, used := f.sectionIDs[id]; used {
		return Section{}, newIDTakenError("section id already assigned", "section_id", id)
	}

	seen := make(map[string]struct{}, len(questionIDs))
	for _, qid := range questionIDs {
		if f.questionIndex(qid) < 0 {
			return Section{}, newInvalidInputError("section references a question that is not on the form", map[string]interface{}{
				"question_id": qid,
			})
		}
		if _, dup := seen[qid]; dup {
			return Section{}, newInvalidInputError("question listed twice", map[string]interface{}{
				"question_id": qid,
			})
		}
		seen[qid] = struct{}{}
		if owner := f.sectionIndexOf(qid); owner >= 0 {
			return Section{}, newInvalidInputError("question already belongs to another section", map[string]interface{}{
				"question_id": qid,
				"section_id":  f.sections[owner].ID,
			})
		}
	}

	style := f.global.Section.Clone()
	section := Section{
		ID:          id,
		Title:       title,
		QuestionIDs: append([]string{}, questionIDs...),
		Style:       &style,
	}
	f.sections = append(f.sections, section)
	f.sectionIDs[id] = struct{}{}
	return section.Clone(), nil
}

// AddQuestionToSection moves a question into a section. A question already
// grouped elsewhere leaves its previous section; adding it to the section it
// is already in changes nothing.
func (f *Form) AddQuestionToSection(questionID, sectionID string) (Section, error) {
	if f.questionIndex(questionID) < 0 {
		return Section{}, newQuestionNotFoundError(questionID)
	}
	target := f.sectionIndex(sectionID)
	if target < 0 {
		return Section{}, newSectionNotFoundError(sectionID)
	}

	owner := f.sectionIndexOf(questionID)
	if owner == target {
		return f.sections[target].Clone(), nil
	}
	if owner >= 0 {
		f.sections[owner].QuestionIDs = without(f.sections[owner].QuestionIDs, questionID)
	}
	f.sections[target].QuestionIDs = append(f.sections[target].QuestionIDs, questionID)
	return f.sections[target].Clone(), nil
}

// RemoveQuestionFromSection ungroups a question. It returns the id of the
// section it left, or "" when it was not grouped.
func (f *Form) RemoveQuestionFromSection(questionID string) (string, error) {
	if f.questionIndex(questionID) < 0 {
		return "", newQuestionNotFoundError(questionID)
	}
	owner := f.sectionIndexOf(questionID)
	if owner < 0 {
		return "", nil
	}
	f.sections[owner].QuestionIDs = without(f.sections[owner].QuestionIDs, questionID)
	return f.sections[owner].ID, nil
}

// UpdateSectionStyle merges patch into the section's style override.
func (f *Form) UpdateSectionStyle(sectionID string, patch SectionStyle) (Section, error) {
	i := f.sectionIndex(sectionID)
	if i < 0 {
		return Section{}, newSectionNotFoundError(sectionID)
	}
	if err := patch.Validate(); err != nil {
		return Section{}, withContext(err, map[string]interface{}{"section_id": sectionID})
	}

	var current SectionStyle
	if f.sections[i].Style != nil {
		current = *f.sections[i].Style
	}
	merged := current.Merge(patch)
	f.sections[i].Style = &merged
	return f.sections[i].Clone(), nil
}

// RenameSection changes a section title.
func (f *Form) RenameSection(sectionID, title string) (Section, error) {
	i := f.sectionIndex(sectionID)
	if i < 0 {
		return Section{}, newSectionNotFoundError(sectionID)
	}
	f.sections[i].Title = title
	return f.sections[i].Clone(), nil
}

// RemoveSection deletes a section. Its questions stay on the form, ungrouped.
func (f *Form) RemoveSection(sectionID string) (Section, error) {
	i := f.sectionIndex(sectionID)
	if i < 0 {
		return Section{}, newSectionNotFoundError(sectionID)
	}
	removed := f.sections[i]
	f.sections = append(f.sections[:i:i], f.sections[i+1:]...)
	return removed.Clone(), nil
}

// SelectQuestion points the selection at id. An empty or unknown id clears
// the selection. It reports whether a question is now selected.
func (f *Form) SelectQuestion(id string) bool {
	if id == "" || f.questionIndex(id) < 0 {
		f.selected = ""
		return false
	}
	f.selected = id
	return true
}

// MoveQuestion removes the question at from and reinserts it at to. Both
// indices refer to positions at call time.
func (f *Form) MoveQuestion(from, to int) error {
	n := len(f.questions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return newInvalidInputError("index out of range", map[string]interface{}{
			"from":  from,
			"to":    to,
			"count": n,
		})
	}
	if from == to {
		return nil
	}

	moved := f.questions[from]
	reordered := make([]PlacedQuestion, 0, n)
	reordered = append(reordered, f.questions[:from]...)
	reordered = append(reordered, f.questions[from+1:]...)
	reordered = append(reordered[:to], append([]PlacedQuestion{moved}, reordered[to:]...)...)
	f.questions = reordered
	return nil
}

// IndexOf returns the position of a placed question, or -1.
func (f *Form) IndexOf(id string) int {
	return f.questionIndex(id)
}

// ResolveEffectiveStyle resolves an override against the current global style.
func (f *Form) ResolveEffectiveStyle(category Category, override any) (EffectiveStyle, error) {
	return ResolveEffectiveStyle(f.global, category, override)
}

func (f *Form) checkFreshQuestionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return newMissingFieldError("question_id")
	}
	if _, used := f.questionIDs[id]; used {
		return newIDTakenError("question id already assigned", "question_id", id)
	}
	if f.catalog.Has(id) {
		return newIDTakenError("question id collides with a catalog id", "question_id", id)
	}
	return nil
}

func (f *Form) questionIndex(id string) int {
	for i := range f.questions {
		if f.questions[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Form) sectionIndex(id string) int {
	for i := range f.sections {
		if f.sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Form) sectionIndexOf(questionID string) int {
	for i := range f.sections {
		if f.sections[i].Contains(questionID) {
			return i
		}
	}
	return -1
}
