package schema

// GroupAssignment maps a variable to a suggested group.
type GroupAssignment struct {
	Variable string `json:"variable"`
	Group    string `json:"group"`
}

// ColorAssignment is a resolved display colour for a series key.
type ColorAssignment struct {
	Key    string `json:"key"`
	Color  string `json:"color"`
	Source string `json:"source"` // override, well-known, palette or hash
}

// Colour sources reported in a ColorAssignment.
const (
	OverrideColorSource  = "override"
	WellKnownColorSource = "well-known"
	PaletteColorSource   = "palette"
	HashColorSource      = "hash"
)

// Well-known group names.
const (
	BaseGroup         = "Base"
	PriceGroup        = "Price"
	PromotionsGroup   = "Promotions"
	MediaGroup        = "Media"
	CompetitionGroup  = "Competition"
	WeatherGroup      = "Weather"
	SeasonalityGroup  = "Seasonality"
	DistributionGroup = "Distribution"
	OtherGroup        = "Other"
)

// GroupColors is the curated colour table for well-known group keys.
// Keys are matched case-insensitively.
var GroupColors = map[string]string{
	"base":         "#CCCCCC",
	"pricing":      "#FF0000",
	"price":        "#FF0000",
	"promotions":   "#FFA500",
	"promotion":    "#FFA500",
	"promo":        "#FFA500",
	"media":        "#4682B4",
	"competition":  "#000000",
	"competitor":   "#000000",
	"weather":      "#8B4513",
	"seasonality":  "#9370DB",
	"distribution": "#2E8B57",
	"other":        "#808080",
}

// FallbackPalette is indexed by key hash for keys without a curated colour.
var FallbackPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// VariablePalette is indexed by a variable's position within its group.
var VariablePalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	"#aec7e8", "#ffbb78", "#98df8a", "#ff9896", "#c5b0d5",
	"#c49c94", "#f7b6d2", "#c7c7c7", "#dbdb8d", "#9edae5",
}
