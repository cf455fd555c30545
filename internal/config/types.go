package config

// CatalogFile is the YAML document listing question templates.
type CatalogFile struct {
	Questions []TemplateDoc `yaml:"questions" validate:"required,min=1,dive"`
}

// TemplateDoc describes one question template.
type TemplateDoc struct {
	ID      string      `yaml:"id" validate:"required,element_id"`
	Text    string      `yaml:"text" validate:"required"`
	Type    string      `yaml:"type" validate:"required,question_type"`
	Options []OptionDoc `yaml:"options,omitempty" validate:"omitempty,dive"`
}

// OptionDoc describes one choice of a template.
type OptionDoc struct {
	ID   string `yaml:"id" validate:"required,element_id"`
	Text string `yaml:"text" validate:"required"`
}

// RecipeFile is the YAML document describing a scripted form build.
type RecipeFile struct {
	Name        string          `yaml:"name" validate:"required,min=1,max=100"`
	Description string          `yaml:"description,omitempty"`
	Catalog     string          `yaml:"catalog,omitempty"`
	GlobalStyle *GlobalStyleDoc `yaml:"global_style,omitempty"`
	Questions   []PlacementDoc  `yaml:"questions" validate:"required,min=1,dive"`
	Sections    []SectionDoc    `yaml:"sections,omitempty" validate:"omitempty,dive"`
	Moves       []MoveDoc       `yaml:"moves,omitempty" validate:"omitempty,dive"`
	Select      string          `yaml:"select,omitempty"`
}

// GlobalStyleDoc carries partial overrides of the default global style.
type GlobalStyleDoc struct {
	Question *TextStyleDoc    `yaml:"question,omitempty"`
	Option   *TextStyleDoc    `yaml:"option,omitempty"`
	Section  *SectionStyleDoc `yaml:"section,omitempty"`
}

// PlacementDoc places one catalog template on the form.
type PlacementDoc struct {
	Template string                  `yaml:"template" validate:"required,element_id"`
	Alias    string                  `yaml:"alias,omitempty" validate:"omitempty,element_id"`
	Style    *TextStyleDoc           `yaml:"style,omitempty"`
	Options  map[string]TextStyleDoc `yaml:"options,omitempty" validate:"omitempty,dive,keys,element_id,endkeys"`
}

// SectionDoc groups placements, referenced by alias or template id.
type SectionDoc struct {
	Title     string           `yaml:"title" validate:"required"`
	Questions []string         `yaml:"questions,omitempty" validate:"omitempty,dive,element_id"`
	Style     *SectionStyleDoc `yaml:"style,omitempty"`
}

// MoveDoc reorders placed questions by position.
type MoveDoc struct {
	From int `yaml:"from" validate:"min=0"`
	To   int `yaml:"to" validate:"min=0"`
}

// TextStyleDoc is a question or option style override.
type TextStyleDoc struct {
	FontColor  *string `yaml:"font_color,omitempty" validate:"omitempty,css_color"`
	FontSize   *string `yaml:"font_size,omitempty" validate:"omitempty,css_length"`
	FontWeight *string `yaml:"font_weight,omitempty" validate:"omitempty,font_weight"`
	TextAlign  *string `yaml:"text_align,omitempty" validate:"omitempty,oneof=left center right"`
	Bold       *bool   `yaml:"bold,omitempty"`
}

// SectionStyleDoc is a section style override.
type SectionStyleDoc struct {
	FlexDirection   *string `yaml:"flex_direction,omitempty" validate:"omitempty,oneof=row column"`
	BackgroundColor *string `yaml:"background_color,omitempty" validate:"omitempty,css_color"`
	BorderColor     *string `yaml:"border_color,omitempty" validate:"omitempty,css_color"`
	BorderWidth     *string `yaml:"border_width,omitempty" validate:"omitempty,css_length"`
	BorderRadius    *string `yaml:"border_radius,omitempty" validate:"omitempty,css_length"`
	Padding         *string `yaml:"padding,omitempty" validate:"omitempty,css_box"`
}
