package recommender

import "outfitapi/models"

// Groups is the formality-filtered pool split by role.
type Groups struct {
	Tops      []*models.Garment
	Bottoms   []*models.Garment
	Shoes     []*models.Garment
	Outerwear []*models.Garment
	// accessories and unknown categories, kept but not used for outfits yet
	Other []*models.Garment
}

func (g Groups) HasBasics() bool {
	return len(g.Tops) > 0 && len(g.Bottoms) > 0
}

func GroupByRole(pool []*models.Garment) Groups {
	var groups Groups
	for _, g := range pool {
		category, _ := models.ParseCategory(string(g.Category))
		switch category {
		case models.CategoryTop:
			groups.Tops = append(groups.Tops, g)
		case models.CategoryBottom:
			groups.Bottoms = append(groups.Bottoms, g)
		case models.CategoryShoes:
			groups.Shoes = append(groups.Shoes, g)
		case models.CategoryOuterwear:
			groups.Outerwear = append(groups.Outerwear, g)
		default:
			groups.Other = append(groups.Other, g)
		}
	}
	return groups
}
