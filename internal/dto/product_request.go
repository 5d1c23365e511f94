package dto

// ProductRequest carries the admin update payload. Pointer fields distinguish
// "absent" from zero values so an omitted field keeps its stored value.
type ProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Brand       *string  `json:"brand"`
}

type ReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}
