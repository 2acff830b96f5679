package fdc

import (
	"encoding/json"
)

// DataType is the FDC discriminator carried on every food record.
type DataType string

const (
	DataTypeBranded    DataType = "Branded"
	DataTypeSurvey     DataType = "Survey (FNDDS)"
	DataTypeSRLegacy   DataType = "SR Legacy"
	DataTypeFoundation DataType = "Foundation"
	DataTypeCustom     DataType = "Custom"
)

// Bucket is the name of an output group in a search result.
type Bucket string

const (
	BucketBranded    Bucket = "Branded"
	BucketSurvey     Bucket = "Survey"
	BucketSRLegacy   Bucket = "SR Legacy"
	BucketFoundation Bucket = "Foundation"
	BucketCustom     Bucket = "Custom"
)

// Nutrient is one entry of a food's nutrient list.
type Nutrient struct {
	NutrientID   int     `json:"nutrientId" bson:"nutrientId"`
	NutrientName string  `json:"nutrientName" bson:"nutrientName"`
	UnitName     string  `json:"unitName" bson:"unitName"`
	Value        float64 `json:"value" bson:"value"`
}

// UnmarshalJSON accepts the abridged search shape as well as the nested
// detail shape ({"nutrient": {...}, "amount": n}).
func (n *Nutrient) UnmarshalJSON(data []byte) error {
	var raw struct {
		NutrientID   int      `json:"nutrientId"`
		NutrientName string   `json:"nutrientName"`
		UnitName     string   `json:"unitName"`
		Value        *float64 `json:"value"`
		Amount       *float64 `json:"amount"`
		Nutrient     *struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = Nutrient{
		NutrientID:   raw.NutrientID,
		NutrientName: raw.NutrientName,
		UnitName:     raw.UnitName,
	}
	if raw.Nutrient != nil {
		if n.NutrientID == 0 {
			n.NutrientID = raw.Nutrient.ID
		}
		if n.NutrientName == "" {
			n.NutrientName = raw.Nutrient.Name
		}
		if n.UnitName == "" {
			n.UnitName = raw.Nutrient.UnitName
		}
	}
	switch {
	case raw.Value != nil:
		n.Value = *raw.Value
	case raw.Amount != nil:
		n.Value = *raw.Amount
	}
	return nil
}

// FoodMeasure is a household portion of a survey food.
type FoodMeasure struct {
	DisseminationText       string  `json:"disseminationText" bson:"disseminationText"`
	GramWeight              float64 `json:"gramWeight" bson:"gramWeight"`
	MeasureUnitAbbreviation string  `json:"measureUnitAbbreviation" bson:"measureUnitAbbreviation"`
	MeasureUnitName         string  `json:"measureUnitName" bson:"measureUnitName"`
}

// InputFood is an ingredient of a survey food.
type InputFood struct {
	FoodDescription string  `json:"foodDescription" bson:"foodDescription"`
	GramWeight      float64 `json:"gramWeight" bson:"gramWeight"`
	IngredientCode  int     `json:"ingredientCode,omitempty" bson:"ingredientCode,omitempty"`
	PortionCode     string  `json:"portionCode,omitempty" bson:"portionCode,omitempty"`
	Unit            string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// Common holds the fields shared by every variant.
type Common struct {
	FdcID         int64      `json:"fdcId" bson:"fdcId"`
	Description   string     `json:"description" bson:"description"`
	DataType      DataType   `json:"dataType" bson:"dataType"`
	FoodNutrients []Nutrient `json:"foodNutrients" bson:"foodNutrients"`
}

// Food is the tagged variant over FDC data types. Concrete types are
// BrandedFood, SurveyFood, SRLegacyFood, FoundationFood, CustomFood and
// UnknownFood.
type Food interface {
	Base() Common
	// Bucket returns the output group the record belongs to, and false for
	// records that belong to no bucket.
	Bucket() (Bucket, bool)
	isFood()
}

type BrandedFood struct {
	Common
	BrandOwner               string  `json:"brandOwner"`
	BrandName                string  `json:"brandName"`
	Ingredients              string  `json:"ingredients"`
	ServingSize              float64 `json:"servingSize"`
	ServingSizeUnit          string  `json:"servingSizeUnit"`
	HouseholdServingFullText string  `json:"householdServingFullText"`
	GtinUpc                  string  `json:"gtinUpc"`
	FoodCategory             string  `json:"foodCategory"`
	PackageWeight            string  `json:"packageWeight"`
	PublishedDate            string  `json:"publishedDate"`
	ModifiedDate             string  `json:"modifiedDate"`
}

type SurveyFood struct {
	Common
	AdditionalDescriptions string        `json:"additionalDescriptions"`
	FoodCategory           string        `json:"foodCategory"`
	FoodCode               string        `json:"foodCode"`
	PublishedDate          string        `json:"publishedDate"`
	FinalFoodInputFoods    []InputFood   `json:"finalFoodInputFoods"`
	FoodMeasures           []FoodMeasure `json:"foodMeasures"`
}

type SRLegacyFood struct {
	Common
	ScientificName string `json:"scientificName"`
	FoodCategory   string `json:"foodCategory"`
	PublishedDate  string `json:"publishedDate"`
	NDBNumber      string `json:"ndbNumber"`
}

type FoundationFood struct {
	Common
	ScientificName            string `json:"scientificName"`
	FoodCategory              string `json:"foodCategory"`
	PublishedDate             string `json:"publishedDate"`
	NDBNumber                 string `json:"ndbNumber"`
	MostRecentAcquisitionDate string `json:"mostRecentAcquisitionDate"`
}

// CustomFood is a user-authored record. It never comes from FDC.
type CustomFood struct {
	Common
	ID              string   `json:"id"`
	ServingSize     string   `json:"servingSize"`
	QuantityPerUnit string   `json:"quantityPerUnit"`
	Ingredients     []string `json:"ingredients"`
	ExpiryDate      string   `json:"expiryDate,omitempty"`
}

// UnknownFood carries a record whose tag is not recognized. It is kept so
// callers can see what was skipped.
type UnknownFood struct {
	Common
}

func (f BrandedFood) Base() Common    { return f.Common }
func (f SurveyFood) Base() Common     { return f.Common }
func (f SRLegacyFood) Base() Common   { return f.Common }
func (f FoundationFood) Base() Common { return f.Common }
func (f CustomFood) Base() Common     { return f.Common }
func (f UnknownFood) Base() Common    { return f.Common }

func (BrandedFood) Bucket() (Bucket, bool)    { return BucketBranded, true }
func (SurveyFood) Bucket() (Bucket, bool)     { return BucketSurvey, true }
func (SRLegacyFood) Bucket() (Bucket, bool)   { return BucketSRLegacy, true }
func (FoundationFood) Bucket() (Bucket, bool) { return BucketFoundation, true }
func (CustomFood) Bucket() (Bucket, bool)     { return BucketCustom, true }
func (UnknownFood) Bucket() (Bucket, bool)    { return "", false }

func (BrandedFood) isFood()    {}
func (SurveyFood) isFood()     {}
func (SRLegacyFood) isFood()   {}
func (FoundationFood) isFood() {}
func (CustomFood) isFood()     {}
func (UnknownFood) isFood()    {}
