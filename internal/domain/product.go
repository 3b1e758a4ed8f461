package domain

import "time"

// Product is a barcode catalog entry used to pre-fill a meal log.
// Nutrient values are per serving as printed in Name.
type Product struct {
	Barcode       string    `bson:"_id" json:"barcode"`
	Name          string    `bson:"name" json:"name"`
	Calories      float64   `bson:"calories" json:"calories"`
	Proteins      float64   `bson:"proteins" json:"proteins"`
	Carbohydrates float64   `bson:"carbohydrates" json:"carbohydrates"`
	Fats          float64   `bson:"fats" json:"fats"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
