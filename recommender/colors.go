package recommender

import "outfitapi/textutil"

// ParseColors turns a free text "White, navy" field into a set of folded tokens.
func ParseColors(csv string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, c := range textutil.SplitFold(csv) {
		set[c] = struct{}{}
	}
	return set
}
