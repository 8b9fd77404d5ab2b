package models

type CreateGarmentIn struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,category"`
	Subcategory *string `json:"subcategory" validate:"omitempty,max=100"`
	Colors      *string `json:"colors" validate:"omitempty,max=200"`
	Formality   *string `json:"formality" validate:"omitempty,formality"`
	Warmth      *int    `json:"warmth" validate:"omitempty,min=1,max=5"`
	Waterproof  bool    `json:"waterproof"`
	// image to upload, a presigned url is returned for it
	FileName *string `json:"file_name" validate:"omitempty,max=200"`
}

type GarmentOut struct {
	Garment
	Uri *string `json:"uri,omitempty"`
}

type GarmentCreatedOut struct {
	Garment       GarmentOut `json:"garment"`
	FileUploadUrl string     `json:"file_upload_url,omitempty"`
}

type RecommendationIn struct {
	Occasion    string   `json:"occasion" validate:"required,max=50"`
	Temperature *float64 `json:"temperature"`
	// older clients send temp_c
	TempC   *float64 `json:"temp_c"`
	Raining *bool    `json:"raining"`
	OwnerID string   `json:"owner_id" validate:"omitempty,max=100"`
}

type OutfitItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Outfit struct {
	Occasion string       `json:"occasion"`
	Items    []OutfitItem `json:"items"`
	Notes    string       `json:"notes,omitempty"`
}
