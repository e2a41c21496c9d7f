package model

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID          = "id"
	FieldBrand       = "brand"
	FieldModel       = "model"
	FieldCarType     = "car_type"
	FieldFuelType    = "fuel_type"
	FieldPricePerDay = "price_per_day"
	FieldAvailable   = "available"
	FieldDescription = "description"
	FieldImage       = "image"

	SortFieldPrice = "price"
)

// Cache prefixes, also invalidated by bookings that take a car off the market.
const (
	CacheSearch = "car:search"
	CacheCount  = "car:count"
)

const (
	MessageSearchRequired  = "Please use the search form to find available cars."
	MessageNoResults       = "No cars found matching your criteria. Try removing some filters or checking the database."
	MessageSearchFailed    = "Error fetching cars: Unable to process search."
	MessageEmptyInventory  = "No cars available in the database. Please ensure the cars table is populated."
	MessageInventoryFailed = "Database error: Unable to fetch cars."
)

// SortColumns whitelists the sort option fields that map to columns.
var SortColumns = map[string]string{
	SortFieldPrice: FieldPricePerDay,
}

type Car struct {
	ID          int64   `db:"id"`
	Brand       string  `db:"brand"`
	Model       string  `db:"model"`
	CarType     string  `db:"car_type"`
	FuelType    string  `db:"fuel_type"`
	PricePerDay float64 `db:"price_per_day"`
	Available   bool    `db:"available"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
}
