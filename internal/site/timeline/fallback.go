package timeline

import "time"

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func monthPtr(y int, m time.Month) *time.Time {
	t := month(y, m)
	return &t
}

// Fallback returns the local experience set shown when the content API
// cannot be reached. Each call returns a fresh copy.
func Fallback() []Item {
	return []Item{
		{
			ID:          "fallback-enovatorz",
			Position:    "Web Developer",
			Company:     "Enovatorz eCommerce",
			StartDate:   month(2024, time.February),
			EndDate:     monthPtr(2025, time.August),
			Description: "Built dashboards that let users and employees list products on Amazon and manage store operations.",
			Category:    CategoryWork,
		},
		{
			ID:          "fallback-freelance",
			Position:    "Freelance Frontend Developer",
			Company:     "Self-employed",
			StartDate:   month(2023, time.March),
			EndDate:     monthPtr(2024, time.January),
			Description: "React, Redux and Tailwind sites for small businesses.",
			Category:    CategoryWork,
		},
		{
			ID:          "fallback-internship",
			Position:    "Web Development Intern",
			Company:     "Local Software House",
			StartDate:   month(2022, time.July),
			EndDate:     monthPtr(2022, time.September),
			Description: "Material-UI components and SQL reporting screens.",
			Category:    CategoryWork,
		},
		{
			ID:          "fallback-kfueit",
			Position:    "BS Artificial Intelligence",
			Company:     "KFUEIT",
			StartDate:   month(2021, time.October),
			Description: "Machine Learning, Deep Learning and Natural Language Processing.",
			Category:    CategoryEducation,
		},
	}
}
