package convex_dto

// NoArgs is sent as an empty object for functions that take no arguments.
type NoArgs struct{}

type IDArgs struct {
	ID string `json:"id"`
}

type BusinessIDArgs struct {
	BusinessID string `json:"businessId"`
}

type CustomerIDArgs struct {
	CustomerID string `json:"customerId"`
}

type UserIDArgs struct {
	UserID string `json:"userId"`
}

type CheckoutURL = string

func validateRecords[T any](records []T) error {
	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return err
		}
	}
	return nil
}
