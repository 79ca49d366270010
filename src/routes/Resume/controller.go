package resume

import (
	"net/http"
	"time"

	"portfolio-backend/utils"
)

const attachmentName = "Dinesh_E_Resume.html"

type ResumeHandler struct {
	Renderer *Renderer
}

// DownloadResume serves the generated resume as an HTML attachment. The
// document format is HTML; the headers say so.
func (rh ResumeHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	body, err := rh.Renderer.RenderHTML(time.Now())
	if err != nil {
		errMsg := "Failed to generate resume"
		utils.HandleError(utils.ErrInternal, err, w, &errMsg)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName)
	w.Write(body)
}
