package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/formsmith/internal/application/builder"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
)

// Placements maps recipe keys (alias or template id) to placed question ids.
type Placements map[string]string

// ApplyRecipe replays r against store in a fixed order: global style,
// placements with their styles, sections, moves, then the selection. It
// stops at the first failing step; the store keeps the steps applied so far.
func ApplyRecipe(ctx context.Context, store *builder.Store, r *recipe.Recipe) (Placements, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}

	if !r.GlobalStyle.Question.IsEmpty() || !r.GlobalStyle.Option.IsEmpty() || !r.GlobalStyle.Section.IsEmpty() {
		if _, err := store.UpdateGlobalStyle(ctx, r.GlobalStyle); err != nil {
			return nil, fmt.Errorf("recipe %q: global style: %w", r.Name, err)
		}
	}

	placements := make(Placements, len(r.Questions))
	for _, p := range r.Questions {
		placed, err := store.AddQuestionFromCatalog(ctx, p.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: place %s: %w", r.Name, p.Key(), err)
		}
		placements[p.Key()] = placed.ID

		if p.Style != nil {
			if _, err := store.UpdateQuestionStyle(ctx, placed.ID, *p.Style); err != nil {
				return nil, fmt.Errorf("recipe %q: style %s: %w", r.Name, p.Key(), err)
			}
		}
		optionIDs := make([]string, 0, len(p.OptionStyles))
		for optionID := range p.OptionStyles {
			optionIDs = append(optionIDs, optionID)
		}
		sort.Strings(optionIDs)
		for _, optionID := range optionIDs {
			if _, err := store.UpdateOptionStyle(ctx, placed.ID, optionID, p.OptionStyles[optionID]); err != nil {
				return nil, fmt.Errorf("recipe %q: style %s option %s: %w", r.Name, p.Key(), optionID, err)
			}
		}
	}

	for _, plan := range r.Sections {
		members := make([]string, 0, len(plan.Members))
		for _, key := range plan.Members {
			members = append(members, placements[key])
		}
		section, err := store.CreateSection(ctx, plan.Title, members)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: section %q: %w", r.Name, plan.Title, err)
		}
		if plan.Style != nil {
			if _, err := store.UpdateSectionStyle(ctx, section.ID, *plan.Style); err != nil {
				return nil, fmt.Errorf("recipe %q: section %q style: %w", r.Name, plan.Title, err)
			}
		}
	}

	for i, move := range r.Moves {
		if err := store.MoveQuestion(ctx, move.From, move.To); err != nil {
			return nil, fmt.Errorf("recipe %q: move %d: %w", r.Name, i, err)
		}
	}

	if r.Select != "" {
		store.SelectQuestion(ctx, placements[r.Select])
	}
	return placements, nil
}
