package requests

// CatalogQuery carries the catalog filters. An unknown category is not an
// error, it simply matches no service.
type CatalogQuery struct {
	Category  string
	Frequency string `validate:"omitempty,oneof=monthly yearly"`
}
