package store

import (
	"time"

	"github.com/lib/pq"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
)

// SeedLocations is the fixed Himachal Pradesh eco-location dataset. It
// backs the in-memory store and seeds an empty database on first run.
func SeedLocations() []models.EcoLocation {
	return []models.EcoLocation{
		{
			ID:        "shimla-ridge-water",
			Name:      "The Ridge Water Station",
			Type:      types.LocationWaterRefill,
			Latitude:  31.1041,
			Longitude: 77.1727,
			Address:   "The Ridge, Shimla, Himachal Pradesh 171001",
			Description: "Free filtered water refill point on Shimla's Ridge. " +
				"Bring your own bottle and skip single-use plastic.",
			EcoRating:     5,
			Image:         "/images/locations/ridge-water-station.jpg",
			QRCode:        "PRITHVI-WR-SHIMLA-001",
			AverageRating: 4.6,
			TotalReviews:  128,
			AvailableActions: []models.EcoAction{
				{ID: "shimla-ridge-water-refill", LocationID: "shimla-ridge-water", Type: types.ActionWaterRefill, Points: types.WATER_REFILL_POINTS, Icon: "droplet", Description: "Refill your water bottle"},
				{ID: "shimla-ridge-water-visit", LocationID: "shimla-ridge-water", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this eco-location"},
			},
		},
		{
			ID:        "shimla-jakhoo-temple",
			Name:      "Jakhoo Temple Heritage Trail",
			Type:      types.LocationCulturalHeritage,
			Latitude:  31.1011,
			Longitude: 77.1830,
			Address:   "Jakhoo Hill, Shimla, Himachal Pradesh 171001",
			Description: "Ancient Hanuman temple atop Shimla's highest peak, " +
				"reached by a forested heritage trail.",
			EcoRating:     4,
			Image:         "/images/locations/jakhoo-temple.jpg",
			QRCode:        "PRITHVI-CH-SHIMLA-002",
			AverageRating: 4.8,
			TotalReviews:  342,
			AvailableActions: []models.EcoAction{
				{ID: "shimla-jakhoo-temple-visit", LocationID: "shimla-jakhoo-temple", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this heritage site"},
				{ID: "shimla-jakhoo-temple-story", LocationID: "shimla-jakhoo-temple", Type: types.ActionStoryUnlock, Points: types.STORY_UNLOCK_POINTS, Icon: "book-open", Description: "Unlock the temple's story"},
			},
			Story: &models.CulturalStory{
				ID:         "story-1",
				LocationID: "shimla-jakhoo-temple",
				Title:      "The Legend of Jakhoo Hill",
				Content: "When Lakshmana fell wounded in battle, Hanuman flew north in search " +
					"of the Sanjeevani herb. Pausing on this peak to ask the sage Yaaku for " +
					"directions, he left behind a footprint that the temple still guards. The " +
					"deodar forest around the trail has been protected by temple custom for " +
					"centuries, long before any written conservation law.",
				Images: pq.StringArray{"/images/stories/jakhoo-1.jpg", "/images/stories/jakhoo-2.jpg"},
			},
		},
		{
			ID:        "shimla-mall-waste",
			Name:      "Mall Road Segregation Point",
			Type:      types.LocationWasteDisposal,
			Latitude:  31.1036,
			Longitude: 77.1746,
			Address:   "Mall Road, Shimla, Himachal Pradesh 171001",
			Description: "Staffed waste segregation point accepting plastics, paper " +
				"and e-waste from residents and tourists.",
			EcoRating:     4,
			Image:         "/images/locations/mall-road-waste.jpg",
			QRCode:        "PRITHVI-WD-SHIMLA-003",
			AverageRating: 4.2,
			TotalReviews:  67,
			AvailableActions: []models.EcoAction{
				{ID: "shimla-mall-waste-waste", LocationID: "shimla-mall-waste", Type: types.ActionWasteDeposit, Points: types.WASTE_DEPOSIT_POINTS, Icon: "trash-2", Description: "Deposit segregated waste"},
			},
		},
		{
			ID:        "manali-harvest-kitchen",
			Name:      "Himalayan Harvest Kitchen",
			Type:      types.LocationEcoRestaurant,
			Latitude:  32.2396,
			Longitude: 77.1887,
			Address:   "Old Manali Road, Manali, Himachal Pradesh 175131",
			Description: "Farm-to-table restaurant sourcing from organic growers in " +
				"the Kullu valley; zero single-use plastic.",
			EcoRating:     5,
			Image:         "/images/locations/himalayan-harvest.jpg",
			QRCode:        "PRITHVI-ER-MANALI-004",
			AverageRating: 4.7,
			TotalReviews:  215,
			AvailableActions: []models.EcoAction{
				{ID: "manali-harvest-kitchen-meal", LocationID: "manali-harvest-kitchen", Type: types.ActionEcoRestaurantVisit, Points: types.ECO_RESTAURANT_POINTS, Icon: "utensils", Description: "Dine at this eco-restaurant"},
				{ID: "manali-harvest-kitchen-refill", LocationID: "manali-harvest-kitchen", Type: types.ActionWaterRefill, Points: types.WATER_REFILL_POINTS, Icon: "droplet", Description: "Refill your water bottle"},
			},
		},
		{
			ID:        "manali-hidimba-grove",
			Name:      "Hidimba Devi Temple Grove",
			Type:      types.LocationCulturalHeritage,
			Latitude:  32.2494,
			Longitude: 77.1786,
			Address:   "Hadimba Temple Road, Manali, Himachal Pradesh 175131",
			Description: "Sixteenth-century pagoda temple inside a protected cedar " +
				"grove sacred to the Hidimba Devi.",
			EcoRating:     5,
			Image:         "/images/locations/hidimba-temple.jpg",
			QRCode:        "PRITHVI-CH-MANALI-005",
			AverageRating: 4.9,
			TotalReviews:  489,
			AvailableActions: []models.EcoAction{
				{ID: "manali-hidimba-grove-visit", LocationID: "manali-hidimba-grove", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this heritage site"},
				{ID: "manali-hidimba-grove-story", LocationID: "manali-hidimba-grove", Type: types.ActionStoryUnlock, Points: types.STORY_UNLOCK_POINTS, Icon: "book-open", Description: "Unlock the grove's story"},
			},
			Story: &models.CulturalStory{
				ID:         "story-2",
				LocationID: "manali-hidimba-grove",
				Title:      "The Grove That Cannot Be Cut",
				Content: "The Dhungri grove belongs to Hidimba Devi, and by village law no " +
					"axe may touch its cedars. Fallen branches alone may be gathered, and " +
					"only for temple fires. Foresters credit this centuries-old taboo with " +
					"preserving some of the oldest deodar stands in the Kullu valley.",
				Images: pq.StringArray{"/images/stories/hidimba-1.jpg"},
			},
		},
		{
			ID:        "dharamshala-norbulingka",
			Name:      "Norbulingka Institute",
			Type:      types.LocationCulturalSite,
			Latitude:  32.1986,
			Longitude: 76.3379,
			Address:   "Sidhpur, Dharamshala, Himachal Pradesh 176057",
			Description: "Center for Tibetan arts set in terraced gardens, built with " +
				"traditional earthquake-resistant methods.",
			EcoRating:     4,
			Image:         "/images/locations/norbulingka.jpg",
			QRCode:        "PRITHVI-CS-DHARAMSHALA-006",
			AverageRating: 4.8,
			TotalReviews:  301,
			AvailableActions: []models.EcoAction{
				{ID: "dharamshala-norbulingka-visit", LocationID: "dharamshala-norbulingka", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this cultural site"},
				{ID: "dharamshala-norbulingka-story", LocationID: "dharamshala-norbulingka", Type: types.ActionStoryUnlock, Points: types.STORY_UNLOCK_POINTS, Icon: "book-open", Description: "Unlock the institute's story"},
			},
			Story: &models.CulturalStory{
				ID:         "story-3",
				LocationID: "dharamshala-norbulingka",
				Title:      "A Garden for a Lost Summer Palace",
				Content: "Named for the Dalai Lama's summer palace in Lhasa, Norbulingka " +
					"was built by exiled artisans so that thangka painting, wood carving " +
					"and statue making would survive outside Tibet. Its gardens follow the " +
					"slope of the hill, watered by channels that reuse every stream.",
				Images: pq.StringArray{"/images/stories/norbulingka-1.jpg"},
			},
		},
		{
			ID:        "kangra-eco-lodge",
			Name:      "Kangra Valley Eco Lodge",
			Type:      types.LocationEcoAccommodation,
			Latitude:  32.1024,
			Longitude: 76.2691,
			Address:   "Kangra Valley, Himachal Pradesh 176001",
			Description: "Solar-powered lodge with rainwater harvesting and a strict " +
				"pack-in pack-out policy for trekkers.",
			EcoRating:     5,
			Image:         "/images/locations/kangra-lodge.jpg",
			QRCode:        "PRITHVI-EA-KANGRA-007",
			AverageRating: 4.5,
			TotalReviews:  94,
			AvailableActions: []models.EcoAction{
				{ID: "kangra-eco-lodge-visit", LocationID: "kangra-eco-lodge", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this eco-accommodation"},
				{ID: "kangra-eco-lodge-waste", LocationID: "kangra-eco-lodge", Type: types.ActionWasteDeposit, Points: types.WASTE_DEPOSIT_POINTS, Icon: "trash-2", Description: "Deposit trail waste"},
			},
		},
		{
			ID:        "shimla-christ-church",
			Name:      "Christ Church Heritage Walk",
			Type:      types.LocationCulturalHeritage,
			Latitude:  31.1043,
			Longitude: 77.1734,
			Address:   "The Ridge, Shimla, Himachal Pradesh 171001",
			Description: "Second-oldest church in North India, the anchor of Shimla's " +
				"colonial heritage walk.",
			EcoRating:     4,
			Image:         "/images/locations/christ-church.jpg",
			QRCode:        "PRITHVI-CH-SHIMLA-008",
			AverageRating: 4.6,
			TotalReviews:  412,
			AvailableActions: []models.EcoAction{
				{ID: "shimla-christ-church-visit", LocationID: "shimla-christ-church", Type: types.ActionVisit, Points: types.VISIT_POINTS, Icon: "map-pin", Description: "Visit this heritage site"},
				{ID: "shimla-christ-church-story", LocationID: "shimla-christ-church", Type: types.ActionStoryUnlock, Points: types.STORY_UNLOCK_POINTS, Icon: "book-open", Description: "Unlock the church's story"},
			},
			Story: &models.CulturalStory{
				ID:         "story-4",
				LocationID: "shimla-christ-church",
				Title:      "Bells Above the Deodars",
				Content: "Consecrated in 1857, Christ Church was built from local stone " +
					"carried up the hill by mule train. Its stained glass survived a " +
					"century and a half of Himalayan winters, and its clock still keeps " +
					"time for the Ridge below.",
				Images: pq.StringArray{"/images/stories/christ-church-1.jpg"},
			},
		},
	}
}

// SeedBadges is the global badge catalog.
func SeedBadges() []models.Badge {
	return []models.Badge{
		{ID: "1", Name: "Plastic-Free Pro", Description: "Save 50 bottles with water refills", Icon: "droplet", Criteria: "50 water refills"},
		{ID: "2", Name: "Mountain Guardian", Description: "Deposit waste 25 times", Icon: "shield", Criteria: "25 waste deposits"},
		{ID: "3", Name: "Local Patron", Description: "Visit 10 eco-friendly businesses", Icon: "store", Criteria: "10 visits"},
		{ID: "4", Name: "Story Collector", Description: "Unlock 15 cultural stories", Icon: "book", Criteria: "15 stories"},
		{ID: "5", Name: "Step Master", Description: "Walk 100 km", Icon: "footprints", Criteria: "100 km walked"},
		{ID: "6", Name: "Himalayan Explorer", Description: "Check in at 5 different locations", Icon: "mountain", Criteria: "5 distinct locations"},
		{ID: "7", Name: "High Altitude Hero", Description: "Check in at 3 high-altitude locations", Icon: "flag", Criteria: "3 high-altitude check-ins"},
		{ID: "8", Name: "Cultural Bridge", Description: "Unlock 5 cultural stories", Icon: "landmark", Criteria: "5 stories"},
	}
}

// SeedEvents is the community events dataset used when no database is
// reachable.
func SeedEvents() []models.CommunityEvent {
	maxCleanup := 60
	maxWalk := 25
	return []models.CommunityEvent{
		{
			ID:          "event-1",
			Title:       "Ridge Clean-up Drive",
			Description: "Monthly volunteer clean-up of the Ridge and Mall Road, gloves and bags provided.",
			Location:    "The Ridge, Shimla",
			Date:        time.Now().AddDate(0, 0, 7),
			Attendees:   42, MaxAttendees: &maxCleanup,
		},
		{
			ID:          "event-2",
			Title:       "Heritage Walk: Colonial Shimla",
			Description: "Guided walk through Shimla's colonial quarter with a local historian.",
			Location:    "Christ Church, Shimla",
			Date:        time.Now().AddDate(0, 0, 10),
			Attendees:   18, MaxAttendees: &maxWalk,
		},
		{
			ID:          "event-3",
			Title:       "Kullu Valley Seed Exchange",
			Description: "Swap heirloom seeds with organic growers from across the valley.",
			Location:    "Himalayan Harvest Kitchen, Manali",
			Date:        time.Now().AddDate(0, 0, 14),
			Attendees:   31,
		},
	}
}
