package product

const (
	// collection name
	productNode string = "products"

	// Fields' name and path
	NameFieldPath        string = "name"
	PriceFieldPath       string = "price"
	DescriptionFieldPath string = "description"
	ImageUrlFieldPath    string = "imageUrl"
	VendorIdFieldPath    string = "vendorId"
	EmailFieldPath       string = "email"
	CreatedAtFieldPath   string = "createdAt"

	DefaultLimit int = 100
	MinLimit     int = 1
	MaxLimit     int = 1000

	OrderAsc  string = "asc"
	OrderDesc string = "desc"
)

// sortable maps the public sort_by values to document field paths.
var sortable = map[string]string{
	"name":      NameFieldPath,
	"price":     PriceFieldPath,
	"createdAt": CreatedAtFieldPath,
}
