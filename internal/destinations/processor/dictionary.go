package processor

import (
	"fmt"
	"strings"
)

// Category is a named, ordered list of destination phrases.
type Category struct {
	Name    string
	Phrases []string
}

// Dictionary is the fixed set of destination categories. Slice order is the
// scan order, and with it the dedup tie-break: when the same phrase appears
// in two categories, the earlier category wins.
type Dictionary []Category

// DefaultDictionary returns the curated destination dictionary. Entries are
// lowercase; matching title-cases them on output.
//
// Category order is cities, landmarks, countries, regions and must stay
// stable: result ordering is an observable contract.
func DefaultDictionary() Dictionary {
	return Dictionary{
		{
			Name: "cities",
			Phrases: []string{
				"paris", "london", "tokyo", "new york", "rome", "barcelona",
				"dubai", "singapore", "istanbul", "bangkok", "amsterdam",
				"prague", "vienna", "lisbon", "kyoto", "venice", "florence",
				"marrakech", "cape town", "rio de janeiro", "sydney",
				"san francisco", "hong kong", "seoul", "mexico city",
				"buenos aires",
			},
		},
		{
			Name: "landmarks",
			Phrases: []string{
				"eiffel tower", "taj mahal", "great wall of china",
				"machu picchu", "colosseum", "statue of liberty", "big ben",
				"sagrada familia", "christ the redeemer", "stonehenge",
				"petra", "angkor wat", "mount fuji", "grand canyon",
				"niagara falls", "golden gate bridge", "acropolis", "louvre",
				"times square", "burj khalifa",
			},
		},
		{
			Name: "countries",
			Phrases: []string{
				"japan", "france", "italy", "spain", "portugal", "greece",
				"thailand", "vietnam", "india", "egypt", "morocco", "brazil",
				"peru", "mexico", "australia", "new zealand", "iceland",
				"norway", "switzerland", "turkey", "indonesia", "croatia",
				"south africa", "canada", "ireland",
			},
		},
		{
			Name: "regions",
			Phrases: []string{
				"tuscany", "provence", "bali", "santorini", "patagonia",
				"amalfi coast", "swiss alps", "french riviera", "andalusia",
				"scottish highlands", "maldives", "caribbean", "sahara",
				"himalayas",
			},
		},
	}
}

// Validate checks the dictionary invariants: no empty category, and every
// phrase lowercase with no leading or trailing whitespace.
func (d Dictionary) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("dictionary has no categories")
	}
	for _, category := range d {
		if category.Name == "" {
			return fmt.Errorf("dictionary contains an unnamed category")
		}
		if len(category.Phrases) == 0 {
			return fmt.Errorf("category %q is empty", category.Name)
		}
		for _, phrase := range category.Phrases {
			if phrase == "" {
				return fmt.Errorf("category %q contains an empty phrase", category.Name)
			}
			if phrase != strings.TrimSpace(phrase) {
				return fmt.Errorf("category %q: phrase %q has surrounding whitespace", category.Name, phrase)
			}
			if phrase != strings.ToLower(phrase) {
				return fmt.Errorf("category %q: phrase %q is not lowercase", category.Name, phrase)
			}
		}
	}
	return nil
}
