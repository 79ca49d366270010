package user

type UserHandler struct{}

type Education struct {
	Institution string   `json:"institution"`
	Program     string   `json:"program"`
	Dates       string   `json:"dates"`
	Highlights  []string `json:"highlights"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Issued string `json:"issued"`
}

type Skills struct {
	Programming []string `json:"programming"`
	MLLibs      []string `json:"ml_libs"`
	Concepts    []string `json:"concepts"`
	Tooling     []string `json:"tooling"`
}

type Profile struct {
	Name            string            `json:"name"`
	Pronouns        string            `json:"pronouns"`
	Title           string            `json:"title"`
	Location        string            `json:"location"`
	Email           string            `json:"email"`
	Links           map[string]string `json:"links"`
	Summary         string            `json:"summary"`
	Education       []Education       `json:"education"`
	Certifications  []Certification   `json:"certifications"`
	Skills          Skills            `json:"skills"`
	LanguagesSpoken []string          `json:"languages_spoken"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	Data    Profile `json:"data"`
}
