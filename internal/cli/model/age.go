package model

// Возрастные рейтинги, от самого строгого к самому свободному.
const (
	AgeToddlers   = "toddlers"
	AgeChildren   = "children"
	AgeYoungTeens = "young_teens"
	AgeTeens      = "teens"
)

// AgeRatings перечисляет поддерживаемые рейтинги в порядке возрастания ранга.
var AgeRatings = []string{AgeToddlers, AgeChildren, AgeYoungTeens, AgeTeens}

// AgeRatingRank returns the position of the rating in the fixed total order,
// or -1 for an unknown rating. Unknown ratings rank below everything, so
// records carrying them stay reloadable under any viewer rating.
func AgeRatingRank(rating string) int {
	for i, r := range AgeRatings {
		if r == rating {
			return i
		}
	}
	return -1
}

// ValidAgeRating reports whether rating is one of the supported tiers.
func ValidAgeRating(rating string) bool { return AgeRatingRank(rating) >= 0 }

// CanReload reports whether a record with the given rating may be reopened
// by a viewer with viewerRating. Violating records stay visible in lists but
// are marked non-actionable by the UI.
func CanReload(recordRating, viewerRating string) bool {
	return AgeRatingRank(recordRating) <= AgeRatingRank(viewerRating)
}
