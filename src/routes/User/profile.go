package user

// DefaultProfile is the portfolio owner's record. It is static by design:
// the site has exactly one subject.
var DefaultProfile = Profile{
	Name:     "Dinesh E",
	Pronouns: "he/him",
	Title:    "Aspiring AI/ML Engineer • Python • DSA • Software Engineering Student @ VIT Vellore",
	Location: "Vellore, Tamil Nadu, India",
	Email:    "dineshedine007@gamil.com",
	Links: map[string]string{
		"linkedin": "https://www.linkedin.com/in/dineshe007",
		"github":   "https://github.com/Dineshh-007",
	},
	Summary: "Early‑career software engineer pursuing an Integrated M.Tech in Software Engineering at VIT Vellore (2024–Present). I enjoy turning algorithms into usable products—especially supervised ML with scikit‑learn—and sharpening DSA and system‑design fundamentals. I learn fast, collaborate well, and like optimizing code for clarity and performance. Open to internships, projects, and mentorship in AI/ML and software engineering.",
	Education: []Education{
		{
			Institution: "Vellore Institute of Technology (VIT)",
			Program:     "Integrated M.Tech, Software Engineering",
			Dates:       "2024 – Present",
			Highlights: []string{
				"Core focus: DSA, OOP, algorithms, system design",
				"Languages: Python, Java, C/C++",
			},
		},
	},
	Certifications: []Certification{
		{
			Name:   "Supervised Machine Learning: Regression and Classification",
			Issuer: "DeepLearning.AI",
			Issued: "Sep 2025",
		},
		{
			Name:   "Problem Solving (Basic)",
			Issuer: "HackerRank",
			Issued: "Jun 2025",
		},
		{
			Name:   "Programming for Everybody (Getting Started with Python)",
			Issuer: "University of Michigan (Coursera)",
			Issued: "Jun 2025",
		},
		{
			Name:   "Python (Basic)",
			Issuer: "HackerRank",
			Issued: "Jun 2025",
		},
	},
	Skills: Skills{
		Programming: []string{"Python", "Java", "C++", "C"},
		MLLibs:      []string{"scikit‑learn", "matplotlib"},
		Concepts:    []string{"Machine Learning", "Supervised Learning", "Linear Regression", "Classification", "DSA", "Problem Solving"},
		Tooling:     []string{"Git", "GitHub"},
	},
	LanguagesSpoken: []string{
		"English — Full professional",
		"Hindi — Professional working",
		"Tamil — Native/bilingual",
		"French — Limited working",
	},
}
