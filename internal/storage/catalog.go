package storage

// CatalogItem is a name-only reference entity: work types, products,
// units and expense categories all share this shape.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SaveCatalogItem struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
