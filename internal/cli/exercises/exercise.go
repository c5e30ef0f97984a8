package exercises

import (
	"fmt"
	"strings"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/search"
)

type ExerciseCmd struct {
	Search  ExerciseSearchCmd  `cmd:"" help:"Search the exercise catalog." default:"withargs"`
	Suggest ExerciseSuggestCmd `cmd:"" help:"Suggest names and tags for a partial query."`
	Show    ExerciseShowCmd    `cmd:"" help:"Show one exercise in detail."`
	Tags    ExerciseTagsCmd    `cmd:"" help:"List the body part, equipment and goal vocabularies."`
}

type ExerciseSearchCmd struct {
	Query     []string `arg:"" optional:"" help:"Free-text query matched against names and tags."`
	BodyPart  []string `help:"Body part facet (repeatable)." short:"b"`
	Equipment []string `help:"Equipment facet (repeatable)." short:"e"`
	Goal      []string `help:"Goal facet (repeatable)." short:"g"`
	Favorites bool     `help:"Only show favorites." short:"f"`
	Limit     int      `help:"Results per page (defaults to the page size setting)."`
	Page      int      `help:"Page number, starting at 1." default:"1"`
	ShowIDs   bool     `help:"Show exercise IDs." name:"show-ids"`
}

func (c *ExerciseSearchCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	settings, err := ctx.Repo.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	favorites, err := ctx.Repo.LoadFavorites()
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	limit := c.Limit
	if limit <= 0 {
		limit = settings.PageSize
	}
	page := max(c.Page, 1)

	filters := models.FilterOptions{
		BodyParts: normalizeTags(c.BodyPart),
		Equipment: normalizeTags(c.Equipment),
		Goals:     normalizeTags(c.Goal),
	}
	matched := search.Search(cat.All(), strings.Join(c.Query, " "), filters)
	if c.Favorites {
		matched = search.FilterFavorites(matched, favorites)
	}

	if len(matched) == 0 {
		ctx.Println("No exercises found")
		return nil
	}

	start := (page - 1) * limit
	if start >= len(matched) {
		ctx.Printf("Page %d is past the end (%d results)\n", page, len(matched))
		return nil
	}
	end := min(start+limit, len(matched))

	ctx.Printf("Exercises %d-%d of %d:\n", start+1, end, len(matched))
	for _, ex := range matched[start:end] {
		ctx.Println(formatLine(ex, favorites.Has(ex.ID), c.ShowIDs))
	}
	if end < len(matched) {
		ctx.Printf("\nMore results available: use --page %d\n", page+1)
	}
	return nil
}

func formatLine(ex models.Exercise, favorite, showID bool) string {
	star := " "
	if favorite {
		star = "★"
	}
	id := ""
	if showID {
		id = fmt.Sprintf(" (ID: %s)", ex.ID)
	}
	return fmt.Sprintf("  %s %s%s [%s] %s | %s", star, ex.Name, id, ex.Difficulty,
		strings.Join(ex.BodyPart, ", "), strings.Join(ex.Equipment, ", "))
}

type ExerciseSuggestCmd struct {
	Query string `arg:"" help:"Partial query."`
}

func (c *ExerciseSuggestCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	suggestions := search.Suggest(cat.All(), c.Query)
	if len(suggestions) == 0 {
		ctx.Println("No suggestions")
		return nil
	}
	for _, s := range suggestions {
		ctx.Println(s)
	}
	return nil
}

// normalizeTags matches flag values against the lowercase catalog tags.
func normalizeTags(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type ExerciseShowCmd struct {
	ID string `arg:"" help:"Exercise ID."`
}

func (c *ExerciseShowCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	ex, ok := cat.Get(c.ID)
	if !ok {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, c.ID)
	}
	favorites, err := ctx.Repo.LoadFavorites()
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	title := ex.Name
	if favorites.Has(ex.ID) {
		title += " ★"
	}
	ctx.Println(title)
	ctx.Printf("  ID:         %s\n", ex.ID)
	ctx.Printf("  Difficulty: %s\n", ex.Difficulty)
	ctx.Printf("  Body part:  %s\n", strings.Join(ex.BodyPart, ", "))
	ctx.Printf("  Equipment:  %s\n", strings.Join(ex.Equipment, ", "))
	if len(ex.Goals) > 0 {
		ctx.Printf("  Goals:      %s\n", strings.Join(ex.Goals, ", "))
	}
	if ex.Rating != nil {
		ctx.Printf("  Rating:     %.1f/5 %s\n", *ex.Rating, ex.RatingDesc)
	}
	ctx.Println("\nInstructions:")
	for i, step := range ex.Instructions {
		ctx.Printf("  %d. %s\n", i+1, step)
	}
	if ex.Tips != "" {
		ctx.Printf("\nTips: %s\n", ex.Tips)
	}
	if ex.Video != "" {
		ctx.Printf("Video: %s\n", ex.Video)
	}
	return nil
}

type ExerciseTagsCmd struct{}

func (c *ExerciseTagsCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	vocab := cat.Vocabulary()
	ctx.Printf("Body parts: %s\n", strings.Join(vocab.BodyParts, ", "))
	ctx.Printf("Equipment:  %s\n", strings.Join(vocab.Equipment, ", "))
	ctx.Printf("Goals:      %s\n", strings.Join(vocab.Goals, ", "))
	ctx.Printf("\n%d exercises\n", cat.Len())
	return nil
}
