package catalog

import "strings"

const (
	BucketSightseeing = "sightseeing"
	BucketAdventure   = "adventure"
	BucketFood        = "food"
	BucketRelaxation  = "relaxation"
)

type ActivityItem struct {
	Name        string
	Description string
	Price       float64
	Rating      float64
}

type activityCatalog map[string][]ActivityItem

var destinationActivities = []entry[activityCatalog]{
	{[]string{"paris"}, activityCatalog{
		BucketSightseeing: {
			{"Eiffel Tower", "Iconic iron tower with panoramic views", 25, 4.7},
			{"Louvre Museum", "World's largest art museum & historic monument", 17, 4.8},
			{"Notre-Dame Cathedral", "Medieval Catholic cathedral", 0, 4.6},
			{"Arc de Triomphe", "Iconic triumphal arch honoring those who fought for France", 13, 4.5},
		},
		BucketAdventure: {
			{"Seine River Cruise", "Boat tour along the Seine River", 15, 4.4},
			{"Montmartre Walking Tour", "Explore the artistic neighborhood", 25, 4.3},
		},
		BucketFood: {
			{"Le Jules Verne", "Fine dining with Eiffel Tower views", 150, 4.6},
			{"Parisian Bakery Tour", "Sample the best pastries in Paris", 45, 4.7},
			{"Wine Tasting Experience", "Sample French wines with a sommelier", 60, 4.5},
		},
	}},
	{[]string{"london"}, activityCatalog{
		BucketSightseeing: {
			{"Tower of London", "Historic castle on the Thames", 30, 4.6},
			{"British Museum", "Museum of human history, art, and culture", 0, 4.8},
			{"Buckingham Palace", "The Queen's official London residence", 30, 4.5},
			{"London Eye", "Giant Ferris wheel on the South Bank", 27, 4.4},
		},
		BucketAdventure: {
			{"Thames RIB Experience", "High-speed boat ride on the Thames", 45, 4.7},
			{"The View from The Shard", "Viewing platform at the top of Western Europe's tallest building", 32, 4.5},
		},
		BucketFood: {
			{"Borough Market Tour", "Food tour of London's oldest food market", 35, 4.6},
			{"Afternoon Tea at The Ritz", "Classic British afternoon tea experience", 60, 4.8},
			{"Gordon Ramsay Restaurant", "Fine dining at celebrity chef restaurant", 120, 4.7},
		},
	}},
	{[]string{"tokyo"}, activityCatalog{
		BucketSightseeing: {
			{"Tokyo Skytree", "Tallest tower in Japan with observation decks", 20, 4.5},
			{"Senso-ji Temple", "Ancient Buddhist temple in Asakusa", 0, 4.7},
			{"Meiji Shrine", "Shinto shrine dedicated to Emperor Meiji", 0, 4.6},
			{"Tokyo Imperial Palace", "Primary residence of the Emperor of Japan", 0, 4.4},
		},
		BucketAdventure: {
			{"Robot Restaurant Show", "Futuristic cabaret show in Shinjuku", 80, 4.2},
			{"Mario Kart City Tour", "Drive through Tokyo dressed as Mario characters", 90, 4.8},
		},
		BucketFood: {
			{"Tsukiji Outer Market Tour", "Food tour of famous fish market area", 40, 4.7},
			{"Sushi Making Class", "Learn to make sushi with a master chef", 65, 4.8},
			{"Izakaya Hopping in Shinjuku", "Guided tour of traditional Japanese pubs", 70, 4.6},
		},
	}},
}

var genericActivities = activityCatalog{
	BucketSightseeing: {
		{"City Tour", "Guided tour of main attractions", 30, 4.5},
		{"Museum Visit", "Local history and art museum", 15, 4.3},
		{"Historic District Walk", "Self-guided tour of historic area", 0, 4.2},
	},
	BucketAdventure: {
		{"Outdoor Excursion", "Nature adventure outside the city", 45, 4.6},
		{"Local Experience", "Unique local activity", 35, 4.4},
	},
	BucketFood: {
		{"Local Cuisine Dinner", "Traditional local food experience", 40, 4.5},
		{"Food Tour", "Sample various local specialties", 35, 4.7},
	},
	BucketRelaxation: {
		{"Spa Day", "Relaxing spa treatment", 80, 4.8},
		{"Park Visit", "Relaxing time in local park", 0, 4.3},
	},
}

// Activities resolves the bucket for tag at destination. Destinations without
// their own catalog use the generic one; unknown tags read the sightseeing
// bucket, and an empty result falls back to generic sightseeing. The returned
// bucket name is the one actually used.
func Activities(destination, tag string) ([]ActivityItem, string) {
	cat, ok := match(destinationActivities, destination)
	if !ok {
		cat = genericActivities
	}

	bucket := strings.ToLower(strings.TrimSpace(tag))
	items, ok := cat[bucket]
	if !ok {
		bucket = BucketSightseeing
		items = cat[bucket]
	}
	if len(items) == 0 {
		bucket = BucketSightseeing
		items = genericActivities[bucket]
	}
	return append([]ActivityItem(nil), items...), bucket
}

// HasActivityCatalog reports whether destination has a dedicated catalog.
func HasActivityCatalog(destination string) bool {
	_, ok := match(destinationActivities, destination)
	return ok
}
