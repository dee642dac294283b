package cart

type CartBucket interface {

	// Restore the cart at runtime.
	Restore(where interface{}) error

	// Save the cart struct for persistance.
	Save(data interface{}) error
}
