package apiclient

// DefaultRestaurant is the bundled profile shown before the server has one.
func DefaultRestaurant() Restaurant {
	return Restaurant{
		Nom:         "Le Festin",
		Description: "Une cuisine française raffinée dans un cadre élégant et contemporain. Notre chef propose une carte qui évolue au fil des saisons, mettant en valeur les meilleurs produits locaux.",
		Adresse:     "15 rue de la Gastronomie, 75001 Paris",
		Telephone:   "+33 1 23 45 67 89",
		Email:       "contact@lefestin.fr",
		ImageURL:    "https://images.unsplash.com/photo-1552566626-52f8b828add9",
		Horaires:    Horaires{Midi: "12:00 - 14:30", Soir: "19:00 - 22:30"},
		Capacite:    Capacite{Midi: 45, Soir: 60},
	}
}

// DefaultMenuItems is the bundled card used when the server has no items or
// cannot be reached. Display only.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{
			Nom:         "Salade César",
			Description: "Laitue romaine, croûtons maison, parmesan, sauce césar traditionnelle",
			Prix:        12.90,
			Categorie:   "Entrées",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1551248429-40975aa4de74",
		},
		{
			Nom:         "Soupe à l'oignon",
			Description: "Oignons caramélisés, bouillon de boeuf, croûtons gratinés au fromage",
			Prix:        9.90,
			Categorie:   "Entrées",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1547308283-b74183c15032",
		},
		{
			Nom:         "Tartare de saumon",
			Description: "Saumon frais, avocat, mangue, vinaigrette aux agrumes",
			Prix:        14.90,
			Categorie:   "Entrées",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58",
		},
		{
			Nom:         "Filet de boeuf Rossini",
			Description: "Filet de boeuf, foie gras poêlé, sauce aux truffes, pommes duchesse",
			Prix:        34.90,
			Categorie:   "Plats",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1600891964092-4316c288032e",
		},
		{
			Nom:         "Risotto aux fruits de mer",
			Description: "Riz arborio, crevettes, moules, calamars, safran",
			Prix:        26.90,
			Categorie:   "Plats",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1534766555764-ce878a5e3a2b",
		},
		{
			Nom:         "Magret de canard",
			Description: "Magret de canard, sauce au miel et aux épices, légumes de saison",
			Prix:        28.90,
			Categorie:   "Plats",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1580554530778-ca36943938b2",
		},
		{
			Nom:         "Crème brûlée à la vanille",
			Description: "Crème à la vanille de Madagascar, caramel croustillant",
			Prix:        9.90,
			Categorie:   "Desserts",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1554679665-f5537f187268",
		},
		{
			Nom:         "Moelleux au chocolat",
			Description: "Chocolat noir 70%, coeur coulant, glace vanille",
			Prix:        11.90,
			Categorie:   "Desserts",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1602351447937-745cb720612f",
		},
		{
			Nom:         "Tarte Tatin",
			Description: "Pommes caramélisées, pâte feuilletée, crème fraîche",
			Prix:        10.90,
			Categorie:   "Desserts",
			Disponible:  true,
			ImageURL:    "https://images.unsplash.com/photo-1621236378699-8597faf6a176",
		},
	}
}
