package fdc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexString decodes FDC fields that are strings in one endpoint and
// numbers in another (ndbNumber, foodCode, gtinUpc, packageWeight).
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// category decodes "foodCategory", which search results send as a string
// and detail records send as {"description": "..."}.
type category string

func (c *category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = category(v)
		return nil
	}
	var obj struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = category(obj.Description)
	return nil
}

// rawFood is the superset of fields any FDC record may carry.
type rawFood struct {
	FdcID         int64      `json:"fdcId"`
	Description   string     `json:"description"`
	DataType      string     `json:"dataType"`
	FoodNutrients []Nutrient `json:"foodNutrients"`

	BrandOwner               string     `json:"brandOwner"`
	BrandName                string     `json:"brandName"`
	Ingredients              string     `json:"ingredients"`
	ServingSize              float64    `json:"servingSize"`
	ServingSizeUnit          string     `json:"servingSizeUnit"`
	HouseholdServingFullText string     `json:"householdServingFullText"`
	GtinUpc                  flexString `json:"gtinUpc"`
	FoodCategory             category   `json:"foodCategory"`
	BrandedFoodCategory      string     `json:"brandedFoodCategory"`
	PackageWeight            flexString `json:"packageWeight"`
	PublishedDate            string     `json:"publishedDate"`
	ModifiedDate             string     `json:"modifiedDate"`

	AdditionalDescriptions string        `json:"additionalDescriptions"`
	FoodCode               flexString    `json:"foodCode"`
	FinalFoodInputFoods    []InputFood   `json:"finalFoodInputFoods"`
	FoodMeasures           []FoodMeasure `json:"foodMeasures"`

	ScientificName            string     `json:"scientificName"`
	NDBNumber                 flexString `json:"ndbNumber"`
	MostRecentAcquisitionDate string     `json:"mostRecentAcquisitionDate"`
}

// Options tunes normalization.
type Options struct {
	// NutrientThreshold drops nutrients whose value is not strictly above
	// it. Nil disables filtering.
	NutrientThreshold *float64
}

// FilterNutrients keeps the nutrients with value > threshold. A nil
// threshold returns the input unchanged.
func FilterNutrients(nutrients []Nutrient, threshold *float64) []Nutrient {
	if threshold == nil {
		return nutrients
	}
	out := make([]Nutrient, 0, len(nutrients))
	for _, n := range nutrients {
		if n.Value > *threshold {
			out = append(out, n)
		}
	}
	return out
}

func (r rawFood) common(opts Options) Common {
	nutrients := FilterNutrients(r.FoodNutrients, opts.NutrientThreshold)
	if nutrients == nil {
		nutrients = []Nutrient{}
	}
	return Common{
		FdcID:         r.FdcID,
		Description:   r.Description,
		DataType:      DataType(r.DataType),
		FoodNutrients: nutrients,
	}
}

// toFood selects the variant named by the record's tag.
func (r rawFood) toFood(opts Options) Food {
	common := r.common(opts)

	switch DataType(r.DataType) {
	case DataTypeBranded:
		cat := string(r.FoodCategory)
		if cat == "" {
			cat = r.BrandedFoodCategory
		}
		return BrandedFood{
			Common:                   common,
			BrandOwner:               r.BrandOwner,
			BrandName:                r.BrandName,
			Ingredients:              r.Ingredients,
			ServingSize:              r.ServingSize,
			ServingSizeUnit:          r.ServingSizeUnit,
			HouseholdServingFullText: r.HouseholdServingFullText,
			GtinUpc:                  string(r.GtinUpc),
			FoodCategory:             cat,
			PackageWeight:            string(r.PackageWeight),
			PublishedDate:            r.PublishedDate,
			ModifiedDate:             r.ModifiedDate,
		}
	case DataTypeSurvey:
		inputs := r.FinalFoodInputFoods
		if inputs == nil {
			inputs = []InputFood{}
		}
		measures := r.FoodMeasures
		if measures == nil {
			measures = []FoodMeasure{}
		}
		return SurveyFood{
			Common:                 common,
			AdditionalDescriptions: r.AdditionalDescriptions,
			FoodCategory:           string(r.FoodCategory),
			FoodCode:               string(r.FoodCode),
			PublishedDate:          r.PublishedDate,
			FinalFoodInputFoods:    inputs,
			FoodMeasures:           measures,
		}
	case DataTypeSRLegacy:
		return SRLegacyFood{
			Common:         common,
			ScientificName: r.ScientificName,
			FoodCategory:   string(r.FoodCategory),
			PublishedDate:  r.PublishedDate,
			NDBNumber:      string(r.NDBNumber),
		}
	case DataTypeFoundation:
		return FoundationFood{
			Common:                    common,
			ScientificName:            r.ScientificName,
			FoodCategory:              string(r.FoodCategory),
			PublishedDate:             r.PublishedDate,
			NDBNumber:                 string(r.NDBNumber),
			MostRecentAcquisitionDate: r.MostRecentAcquisitionDate,
		}
	default:
		// Custom records are never accepted from the wire.
		return UnknownFood{Common: common}
	}
}

// Result groups normalized records by bucket.
type Result struct {
	TotalHits    int               `json:"totalHits"`
	Buckets      map[Bucket][]Food `json:"buckets"`
	Unrecognized []UnknownFood     `json:"unrecognized,omitempty"`
}

func NewResult() *Result {
	return &Result{Buckets: make(map[Bucket][]Food)}
}

// Ensure makes the bucket present in the output even when it stays empty.
func (r *Result) Ensure(b Bucket) {
	if _, ok := r.Buckets[b]; !ok {
		r.Buckets[b] = []Food{}
	}
}

// Add routes a record to its bucket. Records without a bucket are kept
// aside in Unrecognized.
func (r *Result) Add(f Food) {
	b, ok := f.Bucket()
	if !ok {
		if u, isUnknown := f.(UnknownFood); isUnknown {
			r.Unrecognized = append(r.Unrecognized, u)
		}
		return
	}
	r.Buckets[b] = append(r.Buckets[b], f)
}

// Merge folds other into r bucket by bucket, preserving order within each.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.TotalHits += other.TotalHits
	for b, foods := range other.Buckets {
		r.Ensure(b)
		r.Buckets[b] = append(r.Buckets[b], foods...)
	}
	r.Unrecognized = append(r.Unrecognized, other.Unrecognized...)
}

// Empty reports whether no bucket holds a record.
func (r *Result) Empty() bool {
	for _, foods := range r.Buckets {
		if len(foods) > 0 {
			return false
		}
	}
	return true
}

// Normalize reshapes one search response into buckets.
func Normalize(resp SearchResponse, opts Options) *Result {
	res := NewResult()
	res.TotalHits = resp.TotalHits
	if resp.TotalHits == 0 {
		return res
	}
	for _, raw := range resp.Foods {
		res.Add(raw.toFood(opts))
	}
	return res
}

// DecodeFood decodes a single FDC record, as returned by the detail
// endpoint, into its variant.
func DecodeFood(data []byte, opts Options) (Food, error) {
	var raw rawFood
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw.toFood(opts), nil
}

// ParseDataTypeFilter maps the inbound filter values to a category.
// Matching is case-insensitive and tolerates the FDC spelling.
func ParseDataTypeFilter(v string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return CategoryAny, true
	case "all":
		return CategoryAll, true
	case "branded":
		return CategoryBranded, true
	case "survey", strings.ToLower(string(DataTypeSurvey)):
		return CategorySurvey, true
	case "sr legacy", "srlegacy", "sr_legacy":
		return CategorySRLegacy, true
	case "foundation":
		return CategoryFoundation, true
	case "custom":
		return CategoryCustom, true
	default:
		return "", false
	}
}

// ParseFdcID parses a positive FDC identifier.
func ParseFdcID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
