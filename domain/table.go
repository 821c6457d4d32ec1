package domain

// Table is a mongo collection name.
type Table string

const (
	TableListings      Table = "Listings"
	TableListingEvents Table = "ListingEvents"
	TableWhitelists    Table = "Whitelists"
	TableCollections   Table = "Collections"
	TableCurrencies    Table = "Currencies"
	TableSettings      Table = "Settings"
	TableCounters      Table = "Counters"
)
