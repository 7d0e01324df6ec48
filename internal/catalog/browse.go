package catalog

import (
	"slices"

	"github.com/ytget/lynch-universe/internal/model"
)

// Membership answers favorites queries for the derived rows
type Membership interface {
	IsInMyList(id string) bool
	IsLiked(id string) bool
}

// Row is a titled list of items
type Row struct {
	Title   string
	Derived bool
	Items   []model.ContentItem
}

// View is what the browse screen renders for a filter
type View struct {
	Filter string
	Hero   model.ContentItem
	Rows   []Row
}

// NormalizeFilter maps unknown filters to All
func (c *Catalog) NormalizeFilter(filter string) string {
	if slices.Contains(c.Filters(), filter) {
		return filter
	}
	return FilterAll
}

// Browse derives the hero and rows for filter. Derived rows come first and
// only when non-empty; their items follow catalog order.
func (c *Catalog) Browse(filter string, m Membership) View {
	filter = c.NormalizeFilter(filter)
	myList, liked := c.derived(m)

	view := View{Filter: filter, Hero: c.hero(filter, myList, liked)}
	if len(myList) > 0 && (filter == FilterAll || filter == FilterMyList) {
		view.Rows = append(view.Rows, Row{Title: FilterMyList, Derived: true, Items: myList})
	}
	if len(liked) > 0 && (filter == FilterAll || filter == FilterFavorites) {
		view.Rows = append(view.Rows, Row{Title: FilterFavorites, Derived: true, Items: liked})
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.categories {
		if filter == FilterAll || filter == cat.Name {
			view.Rows = append(view.Rows, Row{Title: cat.Name, Items: slices.Clone(cat.Items)})
		}
	}
	return view
}

// Hero returns the featured item for filter
func (c *Catalog) Hero(filter string, m Membership) model.ContentItem {
	filter = c.NormalizeFilter(filter)
	myList, liked := c.derived(m)
	return c.hero(filter, myList, liked)
}

func (c *Catalog) hero(filter string, myList, liked []model.ContentItem) model.ContentItem {
	fallback := c.first()
	switch filter {
	case FilterAll:
		return fallback
	case FilterMyList:
		if len(myList) > 0 {
			return myList[0]
		}
		return fallback
	case FilterFavorites:
		if len(liked) > 0 {
			return liked[0]
		}
		return fallback
	}
	if items := c.Items(filter); len(items) > 0 {
		return items[0]
	}
	return fallback
}

func (c *Catalog) first() model.ContentItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.categories {
		if len(cat.Items) > 0 {
			return cat.Items[0]
		}
	}
	return model.ContentItem{}
}

func (c *Catalog) derived(m Membership) (myList, liked []model.ContentItem) {
	if m == nil {
		return nil, nil
	}
	for _, item := range c.All() {
		if m.IsInMyList(item.ID) {
			myList = append(myList, item)
		}
		if m.IsLiked(item.ID) {
			liked = append(liked, item)
		}
	}
	return myList, liked
}
