package site

// Profile is the bundled owner profile rendered on Home and About.
type Profile struct {
	Name      string
	Headline  string
	Tagline   string
	About     []string
	Skills    []string
	GitHubURL string
	EmailAddr string
}

// Certificate is a bundled certificate card. These are local assets and are
// not read from the content API.
type Certificate struct {
	ID          int
	Title       string
	Image       string
	Description string
}

// NavLink is one header entry.
type NavLink struct {
	Path  string
	Label string
}

var navigation = []NavLink{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/certificates", Label: "Certificates"},
	{Path: "/experience", Label: "Experience"},
}

// DefaultProfile returns the bundled profile.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Shahzaib Nasir",
		Headline: "Web Developer & AI Student",
		Tagline:  "I build dashboards and web apps with React, and study Machine Learning at KFUEIT.",
		About: []string{
			"Hello! I'm Shahzaib Nasir, a Web Developer and AI student at KFUEIT. I work with React, Redux, SQL, HTML, CSS, Redux Saga, Tailwind, MUI and Bootstrap.",
			"Alongside web development I study AI, with a focus on Machine Learning, Deep Learning and Natural Language Processing.",
			"At Enovatorz eCommerce I built dashboards that let users and employees list products on Amazon and manage store operations.",
		},
		Skills: []string{
			"React & Redux",
			"SQL, HTML, CSS",
			"Redux Saga & Tailwind",
			"Material-UI & Bootstrap",
			"Machine Learning, Deep Learning, NLP",
		},
		GitHubURL: "https://github.com/",
		EmailAddr: "hello@example.com",
	}
}

// DefaultCertificates returns the bundled certificate cards.
func DefaultCertificates() []Certificate {
	return []Certificate{
		{ID: 1, Title: "Web Development Certification", Image: "/images/cart1.jpg"},
		{ID: 2, Title: "Advanced React Certification", Image: "/images/cart2.jpg"},
		{ID: 3, Title: "Full Stack Developer Certification", Image: "/images/cart3.jpg"},
		{ID: 4, Title: "Full Stack Developer Certification", Image: "/images/cart4.jpg"},
		{ID: 5, Title: "Full Stack Developer Certification", Image: "/images/cart5.jpg"},
	}
}
