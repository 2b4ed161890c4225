package root

const (
	APIName        = "Seller Dashboard API"
	Version        = "1.0.0"
	Description    = "REST API for retrieving product data from Firebase Firestore"
	welcomeMessage = "Welcome to Seller Dashboard API"
)
