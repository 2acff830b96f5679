package request_models

type SearchQuery struct {
	Query            string   `form:"query"`
	AllWords         bool     `form:"allWords"`
	PageNumber       int      `form:"pageNumber"`
	PageSize         int      `form:"pageSize"`
	DataType         string   `form:"dataType"`
	LegacyDataType   string   `form:"DataType"`
	MinNutrientValue *float64 `form:"minNutrientValue"`
}
