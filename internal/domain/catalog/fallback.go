// internal/domain/catalog/fallback.go
package catalog

// Built-in dataset served whenever the remote store is unreachable or
// empty. The application must stay browsable and transactable offline, so
// this is a hard requirement of the catalog contract, not a demo nicety.

var fallbackProducts = []Product{
	{
		ID:          "1",
		Name:        "Tomat Segar",
		Category:    "sayur_kgan",
		Image:       "https://images.unsplash.com/photo-1546470427-e26264be0b0d?w=300&h=300&fit=crop",
		Description: "Tomat segar pilihan dengan kualitas premium, cocok untuk masakan sehari-hari. Kaya vitamin C dan antioksidan.",
		Variations: []Variation{
			{Name: "1 kg", Price: 15000},
			{Name: "2 kg", Price: 28000},
			{Name: "3 kg", Price: 40000},
		},
	},
	{
		ID:          "2",
		Name:        "Beras Premium",
		Category:    "bahan_pokok",
		Image:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=300&h=300&fit=crop",
		Description: "Beras premium kualitas terbaik dengan butiran yang pulen dan wangi. Ideal untuk keluarga Indonesia.",
		Variations: []Variation{
			{Name: "5 kg", Price: 65000},
			{Name: "10 kg", Price: 125000},
			{Name: "25 kg", Price: 300000},
		},
	},
	{
		ID:          "3",
		Name:        "Apel Malang",
		Category:    "buah",
		Image:       "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=300&h=300&fit=crop",
		Description: "Apel segar dari Malang dengan rasa manis dan tekstur renyah. Kaya serat dan vitamin untuk kesehatan keluarga.",
		Variations: []Variation{
			{Name: "1 kg", Price: 25000},
			{Name: "2 kg", Price: 48000},
		},
	},
	{
		ID:          "4",
		Name:        "Ayam Potong",
		Category:    "lauk",
		Image:       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=300&h=300&fit=crop",
		Description: "Ayam potong segar berkualitas tinggi, dipotong sesuai permintaan. Sumber protein terbaik untuk keluarga.",
		Variations: []Variation{
			{Name: "1 ekor", Price: 35000},
			{Name: "1/2 ekor", Price: 18000},
		},
	},
	{
		ID:          "5",
		Name:        "Cabai Merah",
		Category:    "rempah",
		Image:       "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=300&h=300&fit=crop",
		Description: "Cabai merah segar dengan tingkat kepedasan yang pas. Memberikan cita rasa pedas yang nikmat pada masakan.",
		Variations: []Variation{
			{Name: "250 gram", Price: 12000},
			{Name: "500 gram", Price: 22000},
			{Name: "1 kg", Price: 40000},
		},
	},
	{
		ID:          "6",
		Name:        "Kangkung",
		Category:    "sayur_ikat",
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
		Description: "Kangkung segar yang baru dipetik, daun hijau dan batang yang renyah. Cocok untuk tumis dan sayur bening.",
		Variations: []Variation{
			{Name: "1 ikat", Price: 3000},
			{Name: "2 ikat", Price: 5500},
			{Name: "5 ikat", Price: 12000},
		},
	},
	{
		ID:          "7",
		Name:        "Wortel",
		Category:    "sayur_kgan",
		Image:       "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=300&h=300&fit=crop",
		Description: "Wortel segar berwarna orange cerah, manis dan renyah. Kaya beta karoten dan vitamin A untuk kesehatan mata.",
		Variations: []Variation{
			{Name: "500 gram", Price: 8000},
			{Name: "1 kg", Price: 15000},
		},
	},
	{
		ID:          "8",
		Name:        "Pisang Cavendish",
		Category:    "buah",
		Image:       "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=300&h=300&fit=crop",
		Description: "Pisang cavendish premium dengan rasa manis alami. Kaya potasium dan energi, cocok untuk camilan sehat.",
		Variations: []Variation{
			{Name: "1 sisir", Price: 18000},
			{Name: "2 sisir", Price: 35000},
		},
	},
	{
		ID:          "9",
		Name:        "Bayam Segar",
		Category:    "sayur_ikat",
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
		Description: "Bayam hijau segar dengan daun yang lembut. Kaya zat besi dan folat, baik untuk ibu hamil dan anak-anak.",
		Variations: []Variation{
			{Name: "1 ikat", Price: 2500},
			{Name: "3 ikat", Price: 7000},
		},
	},
	{
		ID:          "10",
		Name:        "Daging Sapi",
		Category:    "lauk",
		Image:       "https://images.unsplash.com/photo-1588347818133-6b2e6d2e8b8a?w=300&h=300&fit=crop",
		Description: "Daging sapi segar pilihan dengan kualitas premium. Tekstur empuk dan rasa yang lezat untuk berbagai olahan.",
		Variations: []Variation{
			{Name: "500 gram", Price: 75000},
			{Name: "1 kg", Price: 145000},
		},
	},
}

// The sentinel category is part of the fallback list so degraded reads need
// no extra prepend step.
var fallbackCategories = []Category{
	{ID: CategoryAll, Name: CategoryAll, DisplayName: "Semua"},
	{ID: "bahan_pokok", Name: "bahan_pokok", DisplayName: "Bahan Pokok"},
	{ID: "buah", Name: "buah", DisplayName: "Buah"},
	{ID: "lauk", Name: "lauk", DisplayName: "Lauk"},
	{ID: "rempah", Name: "rempah", DisplayName: "Rempah"},
	{ID: "sayur_ikat", Name: "sayur_ikat", DisplayName: "Sayur Ikat"},
	{ID: "sayur_kgan", Name: "sayur_kgan", DisplayName: "Sayur Kiloan"},
}

// FallbackProducts returns a copy of the built-in product dataset
func FallbackProducts() []Product {
	products := make([]Product, len(fallbackProducts))
	copy(products, fallbackProducts)
	for i := range products {
		variations := make([]Variation, len(fallbackProducts[i].Variations))
		copy(variations, fallbackProducts[i].Variations)
		products[i].Variations = variations
	}
	return products
}

// FallbackCategories returns a copy of the built-in category dataset,
// sentinel first
func FallbackCategories() []Category {
	categories := make([]Category, len(fallbackCategories))
	copy(categories, fallbackCategories)
	return categories
}
