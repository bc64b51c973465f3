package destinations

import "github.com/Domenick1991/travelbooking/internal/domain"

type curatedDestination struct {
	Name        string
	Country     string
	Description string
	Latitude    float64
}

var curated = map[domain.Season][]curatedDestination{
	domain.SeasonSpring: {
		{Name: "Kyoto", Country: "Japan", Description: "Cherry blossom viewing", Latitude: 35.0116},
		{Name: "Keukenhof", Country: "Netherlands", Description: "Tulip gardens", Latitude: 52.2697},
		{Name: "Washington D.C.", Country: "USA", Description: "Cherry blossom festival", Latitude: 38.9072},
		{Name: "Provence", Country: "France", Description: "Lavender fields", Latitude: 43.9352},
		{Name: "Patagonia", Country: "Chile", Description: "Spring trekking", Latitude: -41.8101},
		{Name: "Amsterdam", Country: "Netherlands", Description: "Flower markets", Latitude: 52.3676},
		{Name: "Seville", Country: "Spain", Description: "Orange blossom season", Latitude: 37.3891},
		{Name: "New Zealand", Country: "New Zealand", Description: "Southern spring", Latitude: -40.9006},
	},
	domain.SeasonSummer: {
		{Name: "Amalfi Coast", Country: "Italy", Description: "Mediterranean paradise", Latitude: 40.6333},
		{Name: "Santorini", Country: "Greece", Description: "Island escape", Latitude: 36.3932},
		{Name: "Maldives", Country: "Maldives", Description: "Tropical luxury", Latitude: 3.2028},
		{Name: "Bali", Country: "Indonesia", Description: "Island adventures", Latitude: -8.3405},
		{Name: "Ibiza", Country: "Spain", Description: "Beach parties", Latitude: 38.9067},
		{Name: "Mykonos", Country: "Greece", Description: "Greek island life", Latitude: 37.4467},
		{Name: "Côte d'Azur", Country: "France", Description: "French Riviera", Latitude: 43.7102},
		{Name: "Hawaii", Country: "USA", Description: "Tropical paradise", Latitude: 19.8968},
	},
	domain.SeasonAutumn: {
		{Name: "Vermont", Country: "USA", Description: "Fall foliage", Latitude: 44.5588},
		{Name: "Bavaria", Country: "Germany", Description: "Oktoberfest & castles", Latitude: 48.7904},
		{Name: "Kyoto", Country: "Japan", Description: "Momiji maple viewing", Latitude: 35.0116},
		{Name: "Tuscany", Country: "Italy", Description: "Harvest season", Latitude: 43.7711},
		{Name: "New England", Country: "USA", Description: "Fall colors", Latitude: 42.3601},
		{Name: "Scottish Highlands", Country: "UK", Description: "Autumn landscapes", Latitude: 57.1497},
		{Name: "Quebec", Country: "Canada", Description: "Maple season", Latitude: 46.8139},
		{Name: "Napa Valley", Country: "USA", Description: "Wine harvest", Latitude: 38.2975},
	},
	domain.SeasonWinter: {
		{Name: "Lapland", Country: "Finland", Description: "Northern lights & snow", Latitude: 68.0},
		{Name: "Zermatt", Country: "Switzerland", Description: "Alpine skiing", Latitude: 46.0207},
		{Name: "Aspen", Country: "USA", Description: "Luxury ski resort", Latitude: 39.1911},
		{Name: "Reykjavik", Country: "Iceland", Description: "Northern lights", Latitude: 64.1466},
		{Name: "Queenstown", Country: "New Zealand", Description: "Winter sports", Latitude: -45.0312},
		{Name: "Hokkaido", Country: "Japan", Description: "Powder snow", Latitude: 43.0642},
		{Name: "Chamonix", Country: "France", Description: "Mont Blanc skiing", Latitude: 45.9237},
		{Name: "Tromsø", Country: "Norway", Description: "Arctic adventures", Latitude: 69.6492},
	},
}
