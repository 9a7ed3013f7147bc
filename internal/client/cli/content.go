package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/collection"
	"github.com/dmitrijs2005/brainly/internal/client/content"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/client/services"
)

func (a *App) refresh(ctx context.Context) error {
	items, err := a.contentService.List(ctx)
	if err != nil {
		a.logger.Warn(ctx, "list content", "error", err)
		return err
	}
	a.items = items
	if a.view.Filter != "" && !hasKind(items, a.view.Filter) {
		a.view.Filter = ""
	}
	return nil
}

func hasKind(items []models.Item, k models.Kind) bool {
	for _, kk := range collection.KindsPresent(items) {
		if kk == k {
			return true
		}
	}
	return false
}

// List reloads the collection and prints what passes the current filter and
// the given search query. An empty query clears the search.
func (a *App) List(ctx context.Context, query string) error {
	if err := a.refresh(ctx); err != nil {
		if errors.Is(err, client.ErrUnauthenticated) {
			fmt.Fprintln(a.out, "You are not signed in. Use 'signin' first.")
			return err
		}
		fmt.Fprintln(a.out, services.MessageOf(err, "Failed to load content"))
		return err
	}
	a.view.Query = strings.TrimSpace(query)

	visible := a.view.Visible(a.items)
	switch {
	case len(a.items) == 0:
		fmt.Fprintln(a.out, "No content yet. Use 'add' to save something.")
	case len(visible) == 0:
		fmt.Fprintln(a.out, "Nothing matches the current search and filter.")
	}
	for _, it := range visible {
		d := content.Describe(it.Type)
		fmt.Fprintf(a.out, "%s %-10s %s\n    %s\n", d.Icon, it.ID, it.Title, it.Link)
	}
	return nil
}

// Kinds prints the kinds present in the loaded list, marking the active one.
func (a *App) Kinds(ctx context.Context) error {
	mark := func(active bool) string {
		if active {
			return "*"
		}
		return " "
	}
	fmt.Fprintf(a.out, "%s all\n", mark(a.view.Filter == ""))
	for _, k := range collection.KindsPresent(a.items) {
		fmt.Fprintf(a.out, "%s %s (%s)\n", mark(a.view.Filter == k), k, content.Describe(k).Label)
	}
	return nil
}

// Filter narrows the list to one kind; "all" clears it.
func (a *App) Filter(ctx context.Context, arg string) error {
	if arg == "" || arg == "all" {
		a.view.Filter = ""
		fmt.Fprintln(a.out, "Showing all kinds")
		return nil
	}
	k, err := models.ParseKind(arg)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown kind %q\n", arg)
		return err
	}
	a.view.Filter = k
	fmt.Fprintf(a.out, "Showing %s only\n", content.Describe(k).Label)
	return nil
}

// Add prompts for kind, title and link and creates the item.
func (a *App) Add(ctx context.Context) error {
	kinds := make([]string, 0, len(models.Kinds()))
	for _, k := range models.Kinds() {
		kinds = append(kinds, string(k))
	}
	rawKind, err := getSimpleText(a.reader, "Type ("+strings.Join(kinds, ", ")+")", a.out)
	if err != nil {
		return err
	}
	kind, err := models.ParseKind(strings.TrimSpace(rawKind))
	if err != nil {
		fmt.Fprintf(a.out, "Unknown kind %q\n", rawKind)
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Link", a.out)
	if err != nil {
		return err
	}

	err = a.contentService.Create(ctx, models.NewContent{Type: kind, Title: title, Link: link})
	if err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Failed to add content. Please try again."))
		return err
	}
	fmt.Fprintln(a.out, "Content added successfully!")
	return a.refresh(ctx)
}

// Delete asks for confirmation and removes the item.
func (a *App) Delete(ctx context.Context, id string) error {
	label := id
	if it, ok := collection.Find(a.items, id); ok {
		label = fmt.Sprintf("%q", it.Title)
	}
	answer, err := getSimpleText(a.reader, "Delete "+label+"? [y/N]", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.contentService.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Failed to delete content"))
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return a.refresh(ctx)
}

// Share prints the public link of the whole collection.
func (a *App) Share(ctx context.Context) error {
	u, err := a.contentService.Share(ctx)
	if err != nil {
		a.logger.Warn(ctx, "share brain", "error", err)
		fmt.Fprintln(a.out, services.MessageOf(err, "Failed to share"))
		return err
	}
	fmt.Fprintln(a.out, u)
	return nil
}
