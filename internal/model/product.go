package model

import "time"

// Product is a catalog entity. Its images live in product_images and are
// removed by the schema's ON DELETE CASCADE when the product row goes away.
type Product struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProductType string    `json:"productType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductImage is the metadata row for a stored product image file. ImageURL
// is derived deterministically from the server base URL, the products folder,
// the product id and the file name.
type ProductImage struct {
	ID          uint64    `json:"id"`
	ProductID   uint64    `json:"productId"`
	ImageURL    string    `json:"imageUrl"`
	IsMainImage bool      `json:"isMainImage"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	FileType    string    `json:"fileType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
