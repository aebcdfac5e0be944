package fixtures

import "train-xchange/models"

// sampleListings is the seed catalog shipped with the demo
var sampleListings = []models.Listing{
	{
		ID: 1, From: "London Paddington", To: "Bath Spa",
		Date: "2024-08-25", Time: "09:15", Duration: "1h 35m",
		OriginalPrice: 89.50, Price: 65.00,
		Class: "Standard", Type: "Off-Peak",
		Seller:   models.Seller{Name: "Sarah M.", Rating: 4.8, Avatar: "S"},
		Flexible: true,
	},
	{
		ID: 2, From: "Manchester Piccadilly", To: "London Euston",
		Date: "2024-08-26", Time: "14:30", Duration: "2h 15m",
		OriginalPrice: 156.00, Price: 120.00,
		Class: "First Class", Type: "Advance",
		Seller:   models.Seller{Name: "James L.", Rating: 4.9, Avatar: "J"},
		Flexible: false,
	},
	{
		ID: 3, From: "Edinburgh Waverley", To: "London King's Cross",
		Date: "2024-08-27", Time: "11:00", Duration: "4h 30m",
		OriginalPrice: 198.50, Price: 145.00,
		Class: "Standard", Type: "Off-Peak",
		Seller:   models.Seller{Name: "Emma W.", Rating: 4.7, Avatar: "E"},
		Flexible: true,
	},
	{
		ID: 4, From: "Birmingham New Street", To: "London Euston",
		Date: "2024-08-25", Time: "16:45", Duration: "1h 25m",
		OriginalPrice: 78.00, Price: 55.00,
		Class: "Standard", Type: "Advance",
		Seller:   models.Seller{Name: "David R.", Rating: 4.6, Avatar: "D"},
		Flexible: false,
	},
	{
		ID: 5, From: "Liverpool Lime Street", To: "London Euston",
		Date: "2024-08-28", Time: "08:30", Duration: "2h 35m",
		OriginalPrice: 134.50, Price: 98.00,
		Class: "Standard", Type: "Off-Peak",
		Seller:   models.Seller{Name: "Rachel K.", Rating: 4.9, Avatar: "R"},
		Flexible: true,
	},
	{
		ID: 6, From: "Bristol Temple Meads", To: "London Paddington",
		Date: "2024-08-29", Time: "13:20", Duration: "1h 50m",
		OriginalPrice: 98.00, Price: 72.00,
		Class: "Standard", Type: "Off-Peak",
		Seller:   models.Seller{Name: "Michael T.", Rating: 4.8, Avatar: "M"},
		Flexible: true,
	},
}

// Listings returns a copy of the seed catalog in its base order
func Listings() []models.Listing {
	out := make([]models.Listing, len(sampleListings))
	copy(out, sampleListings)
	return out
}
