package resume

import (
	"bytes"
	"html/template"
	"time"

	user "portfolio-backend/src/routes/User"
)

// Renderer produces the resume document from the static profile. It is a
// pure function of the profile plus the generation timestamp.
type Renderer struct {
	tmpl    *template.Template
	profile user.Profile
}

func NewRenderer(profile user.Profile) (*Renderer, error) {
	tmpl, err := template.New("resume").Parse(resumeTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, profile: profile}, nil
}

func (rd *Renderer) RenderHTML(generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer

	data := struct {
		user.Profile
		GeneratedAt string
	}{
		Profile:     rd.profile,
		GeneratedAt: generatedAt.UTC().Format("January 2, 2006"),
	}

	if err := rd.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
