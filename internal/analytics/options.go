package analytics

// Options lists the distinct values observed per filter dimension, sorted.
// Placeholder rows contribute NullMarker.
type Options struct {
	Media    []string `json:"media"`
	Titles   []string `json:"titles"`
	Teachers []string `json:"teachers"`
	Tags     []string `json:"tags"`
}

// ListOptions collects the selectable values of a table
func ListOptions(table Table) Options {
	media, titles, teachers, tags := Set{}, Set{}, Set{}, Set{}
	for _, row := range table {
		media[row.Medium] = struct{}{}
		titles[row.Title] = struct{}{}
		teachers[row.Teacher] = struct{}{}
		for _, tag := range SplitTags(row.Tags) {
			tags[tag] = struct{}{}
		}
	}
	return Options{
		Media:    media.Values(),
		Titles:   titles.Values(),
		Teachers: teachers.Values(),
		Tags:     tags.Values(),
	}
}
