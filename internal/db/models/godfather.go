package models

// Godfather is an actor with decision-making capability. IgnoredCategories
// only filters what schedulers surface to them, never what they may decide.
type Godfather struct {
	ID                int64      `json:"id" pg:",pk"`
	UserID            string     `json:"user_id" pg:",notnull,unique"`
	IgnoredCategories []Category `json:"ignored_categories" pg:",array"`
}

func (g *Godfather) Ignores(category Category) bool {
	for _, ignored := range g.IgnoredCategories {
		if ignored == category {
			return true
		}
	}
	return false
}
