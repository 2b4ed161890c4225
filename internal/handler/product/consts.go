package product

const (
	listMessage       = "Retrieved %d products"
	vendorListMessage = "Retrieved %d products for vendor %s"
	getMessage        = "Product %s retrieved successfully"
	notFoundMessage   = "Product with ID '%s' not found"
)
