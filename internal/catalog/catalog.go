// Package catalog holds the built-in activity catalog: the categories and
// point values users pick from when logging. Points are signed; negative
// entries exist on purpose.
package catalog

// Entry is one loggable activity within a category.
type Entry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Category groups related activities under a display label.
type Category struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Activities []Entry `json:"activities"`
}

// Categories is the full catalog, in display order.
var Categories = []Category{
	{
		ID:   "food",
		Name: "Food",
		Activities: []Entry{
			{Name: "Healthy meal", Points: 3},
			{Name: "Home cooking", Points: 2},
			{Name: "Fast food", Points: -2},
			{Name: "Overeating", Points: -3},
		},
	},
	{
		ID:   "exercise",
		Name: "Exercise",
		Activities: []Entry{
			{Name: "Workout", Points: 5},
			{Name: "Walk/Run", Points: 3},
			{Name: "Stretch", Points: 2},
			{Name: "Skipped exercise", Points: -2},
		},
	},
	{
		ID:   "learning",
		Name: "Learning",
		Activities: []Entry{
			{Name: "Read book", Points: 4},
			{Name: "Online course", Points: 3},
			{Name: "New skill", Points: 5},
			{Name: "Procrastinated", Points: -2},
		},
	},
	{
		ID:   "selfcare",
		Name: "Self Care",
		Activities: []Entry{
			{Name: "Meditation", Points: 3},
			{Name: "Good sleep", Points: 4},
			{Name: "Social time", Points: 2},
			{Name: "Skipped self-care", Points: -3},
		},
	},
	{
		ID:   "work",
		Name: "Work",
		Activities: []Entry{
			{Name: "Productive day", Points: 4},
			{Name: "Completed task", Points: 2},
			{Name: "Helped colleague", Points: 3},
			{Name: "Missed deadline", Points: -3},
		},
	},
	{
		ID:   "habits",
		Name: "Habits",
		Activities: []Entry{
			{Name: "No sugar", Points: 2},
			{Name: "Drink water", Points: 1},
			{Name: "Early rising", Points: 2},
			{Name: "Bad habit", Points: -2},
		},
	},
	{
		ID:   "hobbies",
		Name: "Hobbies",
		Activities: []Entry{
			{Name: "Creative time", Points: 3},
			{Name: "Nature time", Points: 4},
			{Name: "Music practice", Points: 2},
			{Name: "Missed hobby", Points: -1},
		},
	},
	{
		ID:   "mood",
		Name: "Mood",
		Activities: []Entry{
			{Name: "Great day", Points: 5},
			{Name: "Stress managed", Points: 3},
			{Name: "Anxiety", Points: -3},
			{Name: "Bad mood", Points: -4},
		},
	},
}

// Find returns the category with the given id.
func Find(id string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i], true
		}
	}
	return nil, false
}
