package config

import (
	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
)

// ToCatalog builds the domain catalog described by doc.
func (doc *CatalogFile) ToCatalog() (form.Catalog, error) {
	templates := make([]form.QuestionTemplate, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		tpl := form.QuestionTemplate{
			ID:   q.ID,
			Text: q.Text,
			Type: form.QuestionType(q.Type),
		}
		for _, opt := range q.Options {
			tpl.Options = append(tpl.Options, form.Option{ID: opt.ID, Text: opt.Text})
		}
		templates = append(templates, tpl)
	}
	return form.NewCatalog(templates...)
}

// ToRecipe builds the domain recipe described by doc.
func (doc *RecipeFile) ToRecipe() *recipe.Recipe {
	r := &recipe.Recipe{
		Name:        doc.Name,
		CatalogPath: doc.Catalog,
		Select:      doc.Select,
	}
	if g := doc.GlobalStyle; g != nil {
		if g.Question != nil {
			r.GlobalStyle.Question = g.Question.toStyle()
		}
		if g.Option != nil {
			r.GlobalStyle.Option = g.Option.toStyle()
		}
		if g.Section != nil {
			r.GlobalStyle.Section = g.Section.toStyle()
		}
	}
	for _, p := range doc.Questions {
		placement := recipe.Placement{TemplateID: p.Template, Alias: p.Alias}
		if p.Style != nil {
			style := p.Style.toStyle()
			placement.Style = &style
		}
		if len(p.Options) > 0 {
			placement.OptionStyles = make(map[string]form.OptionStyle, len(p.Options))
			for optionID, style := range p.Options {
				placement.OptionStyles[optionID] = style.toStyle()
			}
		}
		r.Questions = append(r.Questions, placement)
	}
	for _, s := range doc.Sections {
		plan := recipe.SectionPlan{Title: s.Title, Members: append([]string(nil), s.Questions...)}
		if s.Style != nil {
			style := s.Style.toStyle()
			plan.Style = &style
		}
		r.Sections = append(r.Sections, plan)
	}
	for _, m := range doc.Moves {
		r.Moves = append(r.Moves, recipe.Move{From: m.From, To: m.To})
	}
	return r
}

func (d TextStyleDoc) toStyle() form.TextStyle {
	style := form.TextStyle{
		FontColor:  copyString(d.FontColor),
		FontSize:   copyString(d.FontSize),
		FontWeight: copyString(d.FontWeight),
	}
	if d.TextAlign != nil {
		style.TextAlign = form.Align(form.TextAlign(*d.TextAlign))
	}
	if d.Bold != nil {
		style.IsBold = form.Bool(*d.Bold)
	}
	return style
}

func (d SectionStyleDoc) toStyle() form.SectionStyle {
	style := form.SectionStyle{
		BackgroundColor: copyString(d.BackgroundColor),
		BorderColor:     copyString(d.BorderColor),
		BorderWidth:     copyString(d.BorderWidth),
		BorderRadius:    copyString(d.BorderRadius),
		Padding:         copyString(d.Padding),
	}
	if d.FlexDirection != nil {
		style.FlexDirection = form.Direction(form.FlexDirection(*d.FlexDirection))
	}
	return style
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	return form.String(*v)
}
