package model

// All returns every persisted model in creation order (parents before children)
func All() []interface{} {
	return []interface{}{
		&User{},
		&Banner{},
		&Spot{},
		&Product{},
		&ProductSchedule{},
		&ProductImage{},
		&Poster{},
		&TravelAgent{},
		&Booking{},
		&Content{},
		&SiteSettings{},
		&ActivityLog{},
	}
}

// TableNames returns every table name in drop order (children before parents)
func TableNames() []string {
	return []string{
		"activity_log",
		"site_settings",
		"site_content",
		"booking",
		"travel_agent",
		"poster",
		"product_image",
		"product_schedule",
		"product",
		"spot",
		"banner",
		"admin_user",
	}
}
