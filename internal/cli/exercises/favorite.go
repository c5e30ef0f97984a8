package exercises

import (
	"fmt"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/search"
)

type FavoriteCmd struct {
	Toggle FavoriteToggleCmd `cmd:"" help:"Add or remove an exercise from favorites."`
	List   FavoriteListCmd   `cmd:"" help:"List favorite exercises." default:"1"`
}

type FavoriteToggleCmd struct {
	ID string `arg:"" help:"Exercise ID."`
}

func (c *FavoriteToggleCmd) Run(ctx *cli.Context) error {
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
	next := search.ToggleFavorite(favorites, ex.ID)
	if err := ctx.Repo.SaveFavorites(next); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	if next.Has(ex.ID) {
		ctx.Printf("★ Added %s to favorites\n", ex.Name)
	} else {
		ctx.Printf("Removed %s from favorites\n", ex.Name)
	}
	return nil
}

type FavoriteListCmd struct {
	ShowIDs bool `help:"Show exercise IDs." name:"show-ids"`
}

func (c *FavoriteListCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	favorites, err := ctx.Repo.LoadFavorites()
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	matched := search.FilterFavorites(cat.All(), favorites)
	if len(matched) == 0 {
		ctx.Println("No favorites yet")
		return nil
	}
	ctx.Printf("Favorites (%d):\n", len(matched))
	for _, ex := range matched {
		ctx.Println(formatLine(ex, true, c.ShowIDs))
	}
	if missing := favorites.Len() - len(matched); missing > 0 {
		ctx.Printf("\n%d favorite(s) are not in the current catalog\n", missing)
	}
	return nil
}
