package fixtures

import "train-xchange/models"

var commonStations = []string{
	"London Paddington", "London Euston", "London King's Cross", "London Victoria",
	"London Liverpool Street", "London Waterloo", "London Bridge", "London St Pancras",
	"Manchester Piccadilly", "Manchester Airport", "Birmingham New Street",
	"Edinburgh Waverley", "Glasgow Central", "Bristol Temple Meads", "Bath Spa",
	"Liverpool Lime Street", "Leeds", "Sheffield", "Newcastle", "York",
	"Oxford", "Cambridge", "Brighton", "Cardiff Central", "Swansea",
	"Reading", "Slough", "Windsor & Eton Central", "Portsmouth Harbour",
	"Southampton Central", "Bournemouth", "Exeter St Davids", "Plymouth",
}

// Stations returns the autocomplete station list
func Stations() []models.Station {
	stations := make([]models.Station, 0, len(commonStations))
	for _, name := range commonStations {
		stations = append(stations, models.Station{Name: name})
	}
	return stations
}
