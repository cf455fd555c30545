package form

// Catalog is a fixed, read-only ordered list of question templates.
type Catalog struct {
	templates []QuestionTemplate
	index     map[string]int
}

// NewCatalog validates templates and builds a catalog. Template ids must be
// unique.
func NewCatalog(templates ...QuestionTemplate) (Catalog, error) {
	catalog := Catalog{
		templates: make([]QuestionTemplate, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
	}
	for _, tpl := range templates {
		if err := tpl.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, ok := catalog.index[tpl.ID]; ok {
			return Catalog{}, newInvalidInputError("duplicate template id", map[string]interface{}{
				"template_id": tpl.ID,
			})
		}
		catalog.index[tpl.ID] = len(catalog.templates)
		catalog.templates = append(catalog.templates, tpl.Clone())
	}
	return catalog, nil
}

// Templates returns a copy of the catalog in order.
func (c Catalog) Templates() []QuestionTemplate {
	out := make([]QuestionTemplate, len(c.templates))
	for i, tpl := range c.templates {
		out[i] = tpl.Clone()
	}
	return out
}

// Get returns the template with the given id.
func (c Catalog) Get(id string) (QuestionTemplate, error) {
	i, ok := c.index[id]
	if !ok {
		return QuestionTemplate{}, newDomainError(ErrCodeNotFound, "template not found", nil, map[string]interface{}{
			"template_id": id,
		})
	}
	return c.templates[i].Clone(), nil
}

// Has reports whether id names a catalog template.
func (c Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of templates.
func (c Catalog) Len() int {
	return len(c.templates)
}

// DefaultCatalog returns the built-in survey templates.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog(defaultTemplates()...)
	if err != nil {
		panic("form: default catalog is invalid: " + err.Error())
	}
	return catalog
}

func defaultTemplates() []QuestionTemplate {
	choice := func(pairs ...string) []Option {
		out := make([]Option, 0, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			out = append(out, Option{ID: pairs[i], Text: pairs[i+1]})
		}
		return out
	}
	return []QuestionTemplate{
		{ID: "q1", Text: "What is your name?", Type: QuestionTypeText},
		{ID: "q2", Text: "How old are you?", Type: QuestionTypeText},
		{ID: "q3", Text: "What is your favorite color?", Type: QuestionTypeMultiChoice,
			Options: choice("opt1", "Red", "opt2", "Blue", "opt3", "Green", "opt4", "Yellow")},
		{ID: "q4", Text: "Select all that apply:", Type: QuestionTypeCheckbox,
			Options: choice("opt5", "I like reading", "opt6", "I like sports", "opt7", "I like music", "opt8", "I like traveling")},
		{ID: "q5", Text: "What is your education level?", Type: QuestionTypeDropdown,
			Options: choice("opt9", "High School", "opt10", "Bachelors", "opt11", "Masters", "opt12", "PhD")},
		{ID: "q6", Text: "How would you rate our service?", Type: QuestionTypeMultiChoice,
			Options: choice("opt13", "Excellent", "opt14", "Good", "opt15", "Average", "opt16", "Poor")},
		{ID: "q7", Text: "Do you have any suggestions?", Type: QuestionTypeText},
		{ID: "q8", Text: "How did you hear about us?", Type: QuestionTypeMultiChoice,
			Options: choice("opt17", "Social Media", "opt18", "Friends", "opt19", "Advertisement", "opt20", "Other")},
		{ID: "q9", Text: "Would you recommend us to others?", Type: QuestionTypeMultiChoice,
			Options: choice("opt21", "Yes", "opt22", "No", "opt23", "Maybe")},
		{ID: "q10", Text: "What features would you like to see?", Type: QuestionTypeText},
	}
}
