package models

// Achievement is a fixed catalog entry unlocked at most once when its
// trigger predicate first holds. Unlocked is monotonic, false to true only.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}
